package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/coltonk1/trackify-jobs/internal/types"
)

// ExtractText validates and returns a plain-text document.
func ExtractText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &types.UnreadableDocumentError{Err: fmt.Errorf("text: not valid UTF-8")}
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", &types.UnreadableDocumentError{Err: fmt.Errorf("text: empty document")}
	}
	return text, nil
}

// Extract dispatches on the filename extension. Supported formats are .pdf
// and .txt.
func Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ExtractPDF(data)
	case ".txt":
		return ExtractText(data)
	default:
		return "", fmt.Errorf("unsupported file type %q", filepath.Ext(filename))
	}
}
