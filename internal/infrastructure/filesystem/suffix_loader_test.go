package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suffixes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `{"suffixes": [" [%]", "  {%}", " <%>"]}`)

	suffixes, err := NewSuffixLoader().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{" [%]", "  {%}", " <%>"}, suffixes)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewSuffixLoader().LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFromFileInvalidJSON(t *testing.T) {
	path := writeFile(t, `{"suffixes": [`)
	_, err := NewSuffixLoader().LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileEmptyList(t *testing.T) {
	path := writeFile(t, `{"suffixes": []}`)
	_, err := NewSuffixLoader().LoadFromFile(path)
	assert.Error(t, err)
}
