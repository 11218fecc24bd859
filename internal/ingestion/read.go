package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadDocument reads a resume document from disk and returns cleaned plain
// text, capped at maxLength bytes (non-positive means no cap). Files with an
// .html or .htm extension go through HTML extraction; everything else is
// treated as plain text.
func ReadDocument(path string, maxLength int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = ExtractHTMLText(string(data))
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	default:
		text = CleanText(string(data))
	}

	return Truncate(text, maxLength), nil
}
