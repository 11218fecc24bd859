package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText converts an HTML document to plain text. Script, style,
// and chrome elements are dropped; block-level elements become line breaks so
// section headings stay on their own lines for the detector.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div, section").Each(func(_ int, s *goquery.Selection) {
		// Skip containers; only leaf-ish nodes contribute their own text,
		// otherwise nested divs duplicate content.
		if s.Children().Length() > 0 && s.Is("div, section") {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	extracted := sb.String()
	if extracted == "" {
		// Fallback for documents without block structure
		extracted = doc.Text()
	}

	return CleanText(extracted), nil
}
