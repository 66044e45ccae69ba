// Package extract pulls plain text out of uploaded resume files.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextFromPDF extracts the text of every page of a PDF file, joined with
// newlines. Pages that fail text extraction are skipped rather than
// failing the whole document; an empty result is an error because the
// pipeline cannot work without extracted text.
func TextFromPDF(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf file %s: %w", path, err)
	}
	return TextFromPDFBytes(data)
}

// TextFromPDFBytes extracts text from in-memory PDF data.
func TextFromPDFBytes(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("no extractable text in pdf")
	}
	return result, nil
}
