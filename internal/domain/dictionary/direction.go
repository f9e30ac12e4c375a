package dictionary

// Direction selects which of the two stored language columns is matched
// against the search term and which one is returned as the translation
type Direction int

const (
	// Lang1ToLang2 maps from term1 (language 1) to term2 (language 2)
	Lang1ToLang2 Direction = iota
	// Lang2ToLang1 maps from term2 (language 2) to term1 (language 1)
	Lang2ToLang1
)

// Schema names the table and columns of a dictionary database. Keeping the
// names in a value rather than in constants lets tests and alternative
// exports supply their own layout.
type Schema struct {
	Table       string
	Term1Column string
	Term2Column string
	TypeColumn  string
	UsageColumn string
}

// DefaultSchema returns the layout of the dict.cc SQLite export
func DefaultSchema() Schema {
	return Schema{
		Table:       "main_ft",
		Term1Column: "term1",
		Term2Column: "term2",
		TypeColumn:  "entry_type",
		UsageColumn: "vt_usage",
	}
}

// Columns returns the (source, destination) column pair for a direction
func (s Schema) Columns(direction Direction) (src, dst string) {
	if direction == Lang2ToLang1 {
		return s.Term2Column, s.Term1Column
	}
	return s.Term1Column, s.Term2Column
}
