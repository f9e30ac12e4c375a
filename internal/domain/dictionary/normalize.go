package dictionary

import "strings"

// CollapseSpaces merges every run of two or more consecutive spaces into a
// single one. Some entries in the data set carry double spaces in front of
// bracketed annotations; collapsing keeps the output uniform. Other
// whitespace characters are left untouched.
func CollapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
