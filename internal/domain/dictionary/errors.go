package dictionary

import "errors"

// Sentinel errors surfaced by dictionary lookups.
var (
	// ErrDatabaseNotFound means the database path does not denote an
	// existing file. Lookups never create a missing database.
	ErrDatabaseNotFound = errors.New("dictionary database not found")

	// ErrMalformedRow means a result row contained a field that could not
	// be decoded as text. The stream aborts on the first such row.
	ErrMalformedRow = errors.New("malformed result row")
)
