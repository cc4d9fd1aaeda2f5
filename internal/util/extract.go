package util

import (
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractText returns the lowercase text of a PDF, one page after another.
// Any failure yields an empty string; unreadable pages are skipped.
func ExtractText(path string) string {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return ""
	}
	doc, err := fitz.New(path)
	if err != nil {
		return ""
	}
	defer doc.Close()

	var b strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}
	return strings.ToLower(b.String())
}
