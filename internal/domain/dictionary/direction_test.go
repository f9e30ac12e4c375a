package dictionary

import "testing"

func TestSchemaColumns(t *testing.T) {
	s := DefaultSchema()

	src, dst := s.Columns(Lang1ToLang2)
	if src != "term1" || dst != "term2" {
		t.Errorf("Lang1ToLang2 = (%q, %q), want (term1, term2)", src, dst)
	}

	src, dst = s.Columns(Lang2ToLang1)
	if src != "term2" || dst != "term1" {
		t.Errorf("Lang2ToLang1 = (%q, %q), want (term2, term1)", src, dst)
	}
}
