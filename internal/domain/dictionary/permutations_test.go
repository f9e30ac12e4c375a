package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuffixes(t *testing.T) {
	suffixes := DefaultSuffixes()

	// 2 spacing variants x (3 + 6 + 6) permutations of up to three
	// qualifier styles
	require.Len(t, suffixes, 30)

	// single-element permutations come first, single-space set before the
	// double-space set
	assert.Equal(t, []string{
		" [%]", " {%}", " <%>",
		"  [%]", " {%}", " <%>",
	}, suffixes[:6])

	// spot-check a full three-element permutation
	assert.Contains(t, suffixes, " [%] {%} <%>")
	assert.Contains(t, suffixes, "  [%] {%} <%>")

	for i, s := range suffixes {
		assert.Truef(t, strings.HasPrefix(s, " "), "suffix %d (%q) must start with a space", i, s)
		assert.Truef(t, strings.Contains(s, "%"), "suffix %d (%q) must contain a wildcard", i, s)
	}
}

func TestPermute(t *testing.T) {
	got := permute([]string{"a", "b", "c"}, 2)
	want := [][]string{
		{"a", "b"}, {"a", "c"},
		{"b", "a"}, {"b", "c"},
		{"c", "a"}, {"c", "b"},
	}
	assert.Equal(t, want, got)
}
