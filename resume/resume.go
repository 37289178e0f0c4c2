// Package resume extracts text from candidate resumes and supplies the
// canonical topic list used for cold-start question sampling.
package resume

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxChars caps extracted resume text so it stays within the question
// generator's context budget (~2000 tokens).
const MaxChars = 8000

// ExtractText reads a PDF resume and returns its plain text, truncated
// to MaxChars. Unreadable pages are skipped rather than failing the
// whole document.
func ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return Truncate(strings.TrimSpace(sb.String())), nil
}

// Truncate cuts text to MaxChars, marking the cut.
func Truncate(text string) string {
	if len(text) <= MaxChars {
		return text
	}
	return text[:MaxChars] + "\n[...truncated for context limit]"
}
