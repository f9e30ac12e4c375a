package dictionary

import "strings"

// DefaultSuffixes returns the built-in pattern suffix asset. Annotated
// entries in the data set end in up to three bracketed qualifiers, e.g.
// "statistics {pl} [science ...] <stats>", sometimes with a double space
// before a square bracket. The list enumerates every ordering of up to three
// distinct qualifier styles, once per spacing variant, in a fixed order that
// callers rely on for positional parameter binding.
func DefaultSuffixes() []string {
	elements := [][]string{
		{" [%]", " {%}", " <%>"},
		{"  [%]", " {%}", " <%>"},
	}

	var suffixes []string
	for k := 1; k <= 3; k++ {
		for _, items := range elements {
			for _, p := range permute(items, k) {
				suffixes = append(suffixes, strings.Join(p, ""))
			}
		}
	}
	return suffixes
}

// permute returns all k-permutations of items, first element varying slowest,
// in input order.
func permute(items []string, k int) [][]string {
	if k == 0 {
		return [][]string{{}}
	}
	var out [][]string
	for i, item := range items {
		rest := make([]string, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, tail := range permute(rest, k-1) {
			perm := append([]string{item}, tail...)
			out = append(out, perm)
		}
	}
	return out
}
