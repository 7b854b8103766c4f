package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest is the decoded form of a POST /rank-resumes submission after
// the multipart fields have been read. Exactly one of JobDescription or
// JobURL must be set.
type ScoreRequest struct {
	Filename       string `validate:"required"`
	JobDescription string `validate:"required_without=JobURL,max=10000"`
	JobURL         string `validate:"omitempty,url"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
