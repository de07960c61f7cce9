package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPages caps how many pages are read per document. Classification and
// line extraction only ever need the opening pages of a statement.
const maxPages = 3

// Extractor reads plain text out of PDF statements.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Text returns the combined text of the first pages of the document plus the
// ordered per-page strings. A document that cannot be opened or decoded is a
// document-level error for the caller.
func (e *Extractor) Text(filePath string) (string, []string, error) {
	pages, err := extract(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("extracting pdf text: %w", err)
	}
	return strings.Join(pages, "\n"), pages, nil
}

// extract pulls per-page text with pdf.Reader. The library panics on some
// malformed files, so the recover turns that into an ordinary error.
func extract(filePath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panicked: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}
	if numPages > maxPages {
		numPages = maxPages
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(page))
	}
	return pages, nil
}

// pageText prefers row-based extraction, which keeps amounts on the same
// line as their descriptions, and falls back to plain text when the row
// reader fails.
func pageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		return strings.Join(lines, "\n")
	}

	fontNames := page.Fonts()
	fonts := make(map[string]*pdf.Font, len(fontNames))
	for _, name := range fontNames {
		f := page.Font(name)
		fonts[name] = &f
	}
	text, err := page.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
