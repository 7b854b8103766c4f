package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/coltonk1/trackify-jobs/internal/types"
)

// ErrFileTooLarge indicates the uploaded resume exceeds the size limit.
type ErrFileTooLarge struct {
	Limit int64
}

func (e *ErrFileTooLarge) Error() string {
	return "uploaded file exceeds size limit"
}

// ErrUnsupportedMedia indicates the uploaded file type is not accepted.
type ErrUnsupportedMedia struct {
	Extension string
}

func (e *ErrUnsupportedMedia) Error() string {
	return "unsupported file type: " + e.Extension
}

// HTTPStatus maps an error to its response status code. Unknown errors are
// internal; model-backend outages are reported as 503 so clients can retry,
// and unreadable uploads are the client's problem.
func HTTPStatus(err error) int {
	var (
		tooLarge    *ErrFileTooLarge
		unsupported *ErrUnsupportedMedia
		unreadable  *types.UnreadableDocumentError
		unavailable *types.ModelUnavailableError
		validation  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &unreadable):
		return http.StatusBadRequest
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
