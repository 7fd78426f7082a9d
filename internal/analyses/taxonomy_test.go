package analyses

import (
	"strings"
	"testing"
)

func TestTaxonomyKeywordsLowercase(t *testing.T) {
	for _, group := range taxonomy {
		for _, kw := range group.Keywords {
			if kw != strings.ToLower(kw) {
				t.Fatalf("keyword %q in %s is not lowercase", kw, group.Category.Label())
			}
			if strings.TrimSpace(kw) != kw || kw == "" {
				t.Fatalf("keyword %q in %s has stray whitespace", kw, group.Category.Label())
			}
		}
	}
}

func TestTaxonomyLabelsDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, group := range taxonomy {
		label := group.Category.Label()
		if seen[label] {
			t.Fatalf("duplicate category label %q", label)
		}
		seen[label] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(seen))
	}
}

func TestTaxonomyKeywordsUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, group := range taxonomy {
		for _, kw := range group.Keywords {
			if prev, ok := seen[kw]; ok {
				t.Fatalf("keyword %q appears in both %s and %s", kw, prev, group.Category.Label())
			}
			seen[kw] = group.Category.Label()
		}
	}
}
