package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Experience:\r\nPython   developer"), 0644))

	text, err := ReadDocument(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "Experience:\nPython developer", text)
}

func TestReadDocument_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")
	require.NoError(t, os.WriteFile(path, []byte("<body><p>Go developer</p><script>x()</script></body>"), 0644))

	text, err := ReadDocument(path, 0)
	require.NoError(t, err)
	assert.Contains(t, text, "Go developer")
	assert.NotContains(t, text, "x()")
}

func TestReadDocument_AppliesLengthCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha bravo charlie delta"), 0644))

	text, err := ReadDocument(path, 13)
	require.NoError(t, err)
	assert.Equal(t, "alpha bravo", text)
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := ReadDocument("/nonexistent/resume.txt", 0)
	assert.Error(t, err)
}
