package textproc

// stopwords is a small English stopword list used by the skill validity
// predicate. A candidate that is nothing but a stopword is never a skill.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {},
	"the": {}, "to": {}, "was": {}, "were": {}, "will": {}, "with": {},
	"we": {}, "you": {}, "your": {}, "our": {}, "this": {}, "these": {},
	"those": {}, "they": {}, "them": {}, "their": {}, "but": {}, "not": {},
	"all": {}, "any": {}, "can": {}, "do": {}, "does": {}, "must": {},
	"should": {}, "would": {}, "about": {}, "into": {}, "over": {},
	"under": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"than": {}, "too": {}, "very": {}, "also": {}, "been": {}, "being": {},
	"had": {}, "he": {}, "she": {}, "his": {}, "her": {}, "i": {}, "me": {},
	"my": {}, "no": {}, "so": {}, "up": {}, "out": {}, "if": {}, "when": {},
	"while": {}, "who": {}, "what": {}, "which": {}, "where": {}, "why": {},
	"how": {}, "each": {}, "per": {}, "via": {}, "etc": {},
}

// IsStopword reports whether the lowercased word is in the stopword list.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
