package llm

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// skillListSchema is the contract the extraction prompt asks the model to
// honor. Responses are validated before parsing so a malformed reply is
// rejected in one place with a useful message.
const skillListSchema = `{
  "type": "object",
  "required": ["skills"],
  "properties": {
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "type"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "type": {"type": "string", "enum": ["Hard Skill", "Soft Skill", "Certification"]}
        }
      }
    }
  }
}`

var skillListLoader = gojsonschema.NewStringLoader(skillListSchema)

// ValidateSkillList checks a raw model response against the skill-list
// schema. Returns nil when the document conforms.
func ValidateSkillList(raw string) error {
	result, err := gojsonschema.Validate(skillListLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to validate skill list: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("skill list does not match schema: %s", strings.Join(msgs, "; "))
}
