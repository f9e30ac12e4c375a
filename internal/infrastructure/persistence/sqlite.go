package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"dictcc-go/internal/domain/dictionary"
)

// DictionaryStore provides read-only access to a dict.cc SQLite database
type DictionaryStore struct {
	db     *sql.DB
	schema dictionary.Schema
}

// OpenDictionary opens the database at path. The sqlite3 driver creates a
// missing database file on first use; a lookup must never do that, so the
// path is checked for existence up front and the handle is opened read-only.
func OpenDictionary(path string, schema dictionary.Schema) (*DictionaryStore, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, dictionary.ErrDatabaseNotFound)
		}
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}

	db, err := sql.Open("sqlite3", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DictionaryStore{db: db, schema: schema}, nil
}

// readOnlyDSN builds a read-only file: URI for the database at path. SQLite
// treats '?' and '#' in a URI as the start of the query and fragment and
// percent-decodes the path portion, so those characters must be escaped for
// file names that contain them.
func readOnlyDSN(path string) string {
	escaped := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(path)
	return "file:" + escaped + "?mode=ro"
}

// Close releases the database handle
func (s *DictionaryStore) Close() error {
	return s.db.Close()
}

// Opener opens SQLite-backed dictionary stores with a fixed schema
type Opener struct {
	schema dictionary.Schema
}

// NewOpener creates a store opener for the given schema
func NewOpener(schema dictionary.Schema) *Opener {
	return &Opener{schema: schema}
}

// Open implements dictionary.StoreOpener
func (o *Opener) Open(path string) (dictionary.Store, error) {
	return OpenDictionary(path, o.schema)
}
