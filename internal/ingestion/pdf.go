// Package ingestion turns uploaded documents and job-posting URLs into
// plain text for the scoring pipeline.
package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"rsc.io/pdf"

	"github.com/coltonk1/trackify-jobs/internal/types"
)

// ExtractPDF extracts the text content of a PDF document. Individual pages
// that fail to parse are skipped; the document is unreadable only when no
// page yields text.
func ExtractPDF(data []byte) (text string, err error) {
	// The parser panics on malformed cross-reference tables before any
	// page is reached.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &types.UnreadableDocumentError{Err: fmt.Errorf("pdf: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &types.UnreadableDocumentError{Err: fmt.Errorf("pdf: %w", err)}
	}

	var sb strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		text, err := extractPage(reader, i)
		if err != nil {
			continue
		}
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", &types.UnreadableDocumentError{
			Err: fmt.Errorf("pdf: no extractable text in %d pages", pages),
		}
	}
	return out, nil
}

// extractPage reads one page's text runs in content order. The parser
// panics on malformed content streams, so the recover keeps one bad page
// from losing the document.
func extractPage(reader *pdf.Reader, number int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", number, r)
		}
	}()

	page := reader.Page(number)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing", number)
	}

	var sb strings.Builder
	var lastY float64
	for i, t := range page.Content().Text {
		if i > 0 {
			// A change in baseline starts a new line; otherwise runs on
			// the same line are joined with a space.
			if t.Y != lastY {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
		lastY = t.Y
	}
	return sb.String(), nil
}
