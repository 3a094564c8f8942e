package extract

import (
	"fmt"
	"io"
	"strings"

	"legalyze/internal/util"

	"github.com/ledongthuc/pdf"
)

// FromPDF extracts plain text from a PDF byte stream page by page. A page that
// yields no text contributes nothing; the document as a whole only fails when
// the stream itself is unreadable. The result is sanitized and capped at
// maxChars runes.
func FromPDF(r io.ReaderAt, size int64, maxChars int) (text string, err error) {
	// The parser panics on some malformed inputs; keep that inside this boundary.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("parse pdf: %w: %v", util.ErrExtraction, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w: %w", util.ErrExtraction, err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	out := util.SanitizeText(b.String())
	if out == "" {
		return "", util.ErrNoExtractableText
	}
	return util.Truncate(out, maxChars), nil
}
