package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dictcc-go/internal/domain/dictionary"
)

func TestReadOnlyDSN(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain path", path: "dict.db", want: "file:dict.db?mode=ro"},
		{name: "absolute path", path: "/data/dict.db", want: "file:/data/dict.db?mode=ro"},
		{name: "question mark", path: "dict?.db", want: "file:dict%3f.db?mode=ro"},
		{name: "fragment", path: "dict#1.db", want: "file:dict%231.db?mode=ro"},
		{name: "percent", path: "dict%20.db", want: "file:dict%2520.db?mode=ro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readOnlyDSN(tt.path); got != tt.want {
				t.Errorf("readOnlyDSN(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOpenDictionarySpecialCharacterPath(t *testing.T) {
	path := seedDB(t, []entry{
		{"Liebe {f}", "love", "noun", 50},
	})

	// '?' and '#' are legal in file names but start the query and
	// fragment of an unescaped file: URI
	weird := filepath.Join(filepath.Dir(path), "we?ird#.db")
	require.NoError(t, os.Rename(path, weird))

	found := lookup(t, weird, "love", dictionary.Lang2ToLang1)
	require.Len(t, found, 1)
	assert.Equal(t, "Liebe {f}", found[0].Target)
}

func TestOpenDictionaryReadOnly(t *testing.T) {
	path := seedDB(t, nil)

	store, err := OpenDictionary(path, dictionary.DefaultSchema())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.db.Exec("INSERT INTO main_ft (term1, term2, entry_type, vt_usage) VALUES ('a', 'b', 'noun', 1)")
	assert.Error(t, err, "the lookup handle must be read-only")
}
