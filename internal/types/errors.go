package types

import "fmt"

// ModelUnavailableError indicates that an embedding, NER, or regression
// backend is unreachable or failed to load. It is fatal for the current
// request: the pipeline never substitutes a zero score, because a zero score
// is indistinguishable from a genuinely poor match.
type ModelUnavailableError struct {
	Backend string // "embedding", "ner", "regression", "llm"
	Err     error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model backend %q unavailable: %v", e.Backend, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Err }

// UnreadableDocumentError indicates that text extraction failed for the
// entire document. Pages with no extractable text are tolerated; this error
// means nothing at all could be read.
type UnreadableDocumentError struct {
	Err error
}

func (e *UnreadableDocumentError) Error() string {
	return fmt.Sprintf("document is unreadable: %v", e.Err)
}

func (e *UnreadableDocumentError) Unwrap() error { return e.Err }

// MalformedSkillRecordError indicates an extractor strategy produced a record
// with an empty name or unrecognized type. It is recovered locally by
// dropping the record; extraction is noisy and partial loss is expected.
type MalformedSkillRecordError struct {
	Name    string
	RawType string
}

func (e *MalformedSkillRecordError) Error() string {
	return fmt.Sprintf("malformed skill record (name=%q type=%q)", e.Name, e.RawType)
}
