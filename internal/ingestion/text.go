// Package ingestion turns uploaded documents into the plain text the
// analyzer consumes. It handles plain-text and HTML inputs; binary formats
// like PDF are expected to be converted by an upstream extraction service.
package ingestion

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes extracted text while preserving line structure:
// CRLF becomes LF, trailing whitespace is trimmed, runs of spaces collapse,
// and blank-line runs are capped at one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// Truncate caps text at maxLength bytes, cutting back to the previous
// whitespace so a token is never split mid-word. A non-positive maxLength
// means no cap. Capping input length bounds the analyzer's cost, which grows
// with text length times taxonomy size.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 || len(text) <= maxLength {
		return text
	}

	cut := text[:maxLength]
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}
