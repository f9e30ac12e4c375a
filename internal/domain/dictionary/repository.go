package dictionary

import "context"

// Consumer receives matches one at a time, in ranked order. Returning a
// non-nil error stops the stream immediately; the error is handed back to
// the caller unchanged.
type Consumer func(t Translation) error

// Store is an opened, read-only dictionary database
type Store interface {
	// StreamMatches runs the two pattern groups against the source column
	// of the given direction and feeds every match to consumer. Rows
	// arrive ordered by resolved category, then usage count descending,
	// then source text. No matches at all is a success.
	StreamMatches(ctx context.Context, patterns PatternSet, direction Direction, consumer Consumer) error

	// Close releases the underlying database handle
	Close() error
}

// StoreOpener opens dictionary stores by path
type StoreOpener interface {
	// Open returns a store for the database at path, or
	// ErrDatabaseNotFound if no file exists there
	Open(path string) (Store, error)
}
