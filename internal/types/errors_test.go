package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelUnavailableErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &ModelUnavailableError{Backend: "ner", Err: cause}

	assert.Contains(t, err.Error(), `"ner"`)
	assert.ErrorIs(t, err, cause)
}

func TestUnreadableDocumentErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("no pages")
	err := &UnreadableDocumentError{Err: cause}

	assert.Contains(t, err.Error(), "unreadable")
	assert.ErrorIs(t, err, cause)
}

func TestMalformedSkillRecordError(t *testing.T) {
	err := &MalformedSkillRecordError{Name: "python", RawType: "Unknown Type"}

	assert.Contains(t, err.Error(), `"python"`)
	assert.Contains(t, err.Error(), `"Unknown Type"`)

	var target *MalformedSkillRecordError
	assert.True(t, errors.As(error(err), &target))
}
