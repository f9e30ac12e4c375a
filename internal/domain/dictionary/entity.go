package dictionary

// Translation represents a single dictionary match delivered to a consumer
type Translation struct {
	// Source is the matched text in the lookup language
	Source string
	// Target is the corresponding text in the other language
	Target string
	// Category is the resolved grammatical category of the entry
	Category string
}

// Well-known resolved categories. The database stores free-form category
// strings; only these two carry meaning inside the lookup logic.
const (
	// CategoryUnknown replaces an empty entry type. The substitution is
	// performed inside the query so that ordering sees the literal word
	// "unknown" rather than the empty string.
	CategoryUnknown = "unknown"
	// CategoryVerb constrains the "to ..." prefix patterns
	CategoryVerb = "verb"
)
