// Package types defines the data model shared across the scoring pipeline.
package types

import "strings"

// SkillType classifies an extracted skill.
type SkillType string

// Skill type constants match the labels used by the skill dictionary.
const (
	SkillTypeHard          SkillType = "Hard Skill"
	SkillTypeSoft          SkillType = "Soft Skill"
	SkillTypeCertification SkillType = "Certification"
)

// ParseSkillType maps a raw extractor label to a SkillType.
// Unrecognized labels return ok=false; callers drop such records rather
// than defaulting them.
func ParseSkillType(raw string) (SkillType, bool) {
	switch strings.TrimSpace(raw) {
	case string(SkillTypeHard):
		return SkillTypeHard, true
	case string(SkillTypeSoft):
		return SkillTypeSoft, true
	case string(SkillTypeCertification):
		return SkillTypeCertification, true
	}
	return "", false
}

// SkillRecord is a single extracted skill. Identity is by Name, which is
// lowercased and canonical; duplicates across extraction strategies collapse
// by name.
type SkillRecord struct {
	// SourceID is an opaque id into the skill dictionary. Empty for records
	// produced by heuristic extractors that don't map to a dictionary entry.
	SourceID string    `json:"skill_id,omitempty"`
	Name     string    `json:"name"`
	Type     SkillType `json:"type"`
}

// Valid reports whether the record is well-formed enough to enter the
// pipeline: a non-empty name and a recognized type. Single-character names
// are handled later by the context filter, which knows the whitelist.
func (r SkillRecord) Valid() bool {
	if strings.TrimSpace(r.Name) == "" {
		return false
	}
	_, ok := ParseSkillType(string(r.Type))
	return ok
}
