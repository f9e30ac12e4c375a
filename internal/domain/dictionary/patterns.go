package dictionary

// Pattern is a single LIKE expression against the source column. Matching
// always goes through LIKE, including the plain term itself, which keeps
// lookups case-insensitive the way the data set expects.
type Pattern struct {
	// Text is the match expression; '%' is the wildcard
	Text string
	// Category, when non-empty, restricts the pattern to entries whose
	// resolved category equals it
	Category string
}

// PatternSet holds the two pattern groups of one lookup. Primary catches the
// term itself and its annotation variants; Fallback catches the term as a
// word inside a longer phrase. The groups are unioned as two independent
// predicates so that the fallback cannot dilute the primary group. Slice
// order is significant: parameters are bound positionally in exactly this
// order.
type PatternSet struct {
	Primary  []Pattern
	Fallback []Pattern
}

// brackets lists the annotation styles used by the data set
var brackets = [...]struct{ open, close string }{
	{"<", ">"},
	{"[", "]"},
	{"{", "}"},
	{"(", ")"},
}

// Generator builds pattern sets for search terms. The suffix list is an
// injectable, order-significant data asset covering dataset-specific
// annotation combinations; it is tuning, not derived logic.
type Generator struct {
	suffixes []string
}

// NewGenerator creates a pattern generator. A nil suffix list selects
// DefaultSuffixes.
func NewGenerator(suffixes []string) *Generator {
	if suffixes == nil {
		suffixes = DefaultSuffixes()
	}
	return &Generator{suffixes: suffixes}
}

// Generate produces the pattern set for a term. An empty term still yields
// the full set; whether empty matches exist is the database's business.
// Wildcard metacharacters inside the term are passed through unescaped.
func (g *Generator) Generate(term string) PatternSet {
	primary := make([]Pattern, 0, len(g.suffixes)+2*len(brackets)+3)

	primary = append(primary, Pattern{Text: term})

	// An entry such as "term [coll.]" must be found when searching for
	// "term". LIKE has no alternation, so each bracket style gets its own
	// pattern, once with a single space and once with the double space
	// some annotated entries carry.
	for _, space := range []string{" ", "  "} {
		for _, b := range brackets {
			primary = append(primary, Pattern{Text: term + space + b.open + "%" + b.close})
		}
	}

	for _, suffix := range g.suffixes {
		primary = append(primary, Pattern{Text: term + suffix})
	}

	// English verbs are stored in infinitive form. Without the category
	// constraint these would also match nouns that happen to start with
	// "to ".
	primary = append(primary,
		Pattern{Text: "to " + term, Category: CategoryVerb},
		Pattern{Text: "to " + term + " %", Category: CategoryVerb},
	)

	fallback := []Pattern{
		{Text: "to " + term},
		{Text: "to " + term + " %"},
		{Text: term + " %"},
		{Text: "% " + term},
		{Text: "% " + term + " %"},
	}

	return PatternSet{Primary: primary, Fallback: fallback}
}
