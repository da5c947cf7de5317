package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"mailtriage/internal/models"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// MaxFileSize is the upload cap enforced by callers before extraction.
const MaxFileSize = 5 * 1024 * 1024

// FromFile extracts plain text from an uploaded document based on its
// declared extension. Supported formats: txt and pdf.
func FromFile(filename string, data []byte) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "txt":
		return fromTXT(data)
	case "pdf":
		return fromPDF(data)
	default:
		return "", models.ErrUnsupportedFormat
	}
}

// fromTXT decodes the file as UTF-8 when valid, falling back to
// Windows-1252 for legacy exports.
func fromTXT(data []byte) (string, error) {
	var text string
	if utf8.Valid(data) {
		text = string(data)
	} else {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			decoded, _ = charmap.ISO8859_1.NewDecoder().Bytes(data)
		}
		text = string(decoded)
	}

	if strings.TrimSpace(text) == "" {
		return "", models.ErrEmptyDocument
	}
	return text, nil
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrEmptyDocument, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		// Protected PDFs and scanned images both land here.
		return "", models.ErrEmptyDocument
	}
	return text, nil
}
