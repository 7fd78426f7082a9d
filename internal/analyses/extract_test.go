package analyses

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractSkillsWholeWordMatching(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		category string
		want     []string
	}{
		{
			name:     "standalone keyword",
			text:     "Experience with java is required",
			category: "Languages",
			want:     []string{"java"},
		},
		{
			name:     "case insensitive",
			text:     "Strong JAVA and Python background",
			category: "Languages",
			want:     []string{"java", "python"},
		},
		{
			name:     "punctuated keyword",
			text:     "Familiarity with C++ and node.js",
			category: "Languages",
			want:     []string{"c", "c++"},
		},
		{
			name:     "multi word keyword",
			text:     "Knowledge of operating systems internals",
			category: "Core CS",
			want:     []string{"operating systems"},
		},
		{
			name:     "slash keyword",
			text:     "We run CI/CD pipelines on every merge",
			category: "Cloud & DevOps",
			want:     []string{"ci/cd"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractSkills(tc.text)
			if !reflect.DeepEqual(got.ByCategory[tc.category], tc.want) {
				t.Fatalf("category %q: expected %v, got %v", tc.category, tc.want, got.ByCategory[tc.category])
			}
		})
	}
}

func TestExtractSkillsNoSubstringCrossMatch(t *testing.T) {
	got := ExtractSkills("We use PostgreSQL in production")

	data := got.ByCategory[CategoryData.Label()]
	if !reflect.DeepEqual(data, []string{"postgresql"}) {
		t.Fatalf("expected only postgresql, got %v", data)
	}
	for _, skill := range got.Flat {
		if skill == "sql" {
			t.Fatalf("sql must not match inside postgresql")
		}
	}
}

func TestExtractSkillsSubstringOfLongerWordExcluded(t *testing.T) {
	// "gopher" and "cargo" contain "go" but not as a whole word.
	got := ExtractSkills("Our gopher mascot guards the cargo bay")
	if len(got.ByCategory) != 0 {
		t.Fatalf("expected no matches, got %v", got.ByCategory)
	}
	if len(got.Flat) != 0 {
		t.Fatalf("expected empty flat list, got %v", got.Flat)
	}
}

func TestExtractSkillsEmptyText(t *testing.T) {
	got := ExtractSkills("")
	if len(got.ByCategory) != 0 || len(got.Flat) != 0 {
		t.Fatalf("expected empty extraction, got %+v", got)
	}
}

func TestExtractSkillsRepeatedKeywordMatchesOnce(t *testing.T) {
	got := ExtractSkills("java java java everywhere, more java")
	if count := len(got.ByCategory[CategoryLanguages.Label()]); count != 1 {
		t.Fatalf("expected java once, got %d entries", count)
	}
}

func TestExtractSkillsFlatFollowsTaxonomyOrder(t *testing.T) {
	// Mention skills in reverse taxonomy order; flat must still come back
	// category-then-keyword ordered.
	got := ExtractSkills("jest, docker, sql, react, python, dsa")

	want := []string{"dsa", "python", "react", "sql", "docker", "jest"}
	if !reflect.DeepEqual(got.Flat, want) {
		t.Fatalf("expected flat %v, got %v", want, got.Flat)
	}
}

func TestExtractSkillsFlatMirrorsByCategory(t *testing.T) {
	got := ExtractSkills("java, react, sql, aws, junit, oop and more java")

	total := 0
	for label, skills := range got.ByCategory {
		if len(skills) == 0 {
			t.Fatalf("category %q present with empty list", label)
		}
		total += len(skills)
	}
	if total != len(got.Flat) {
		t.Fatalf("flat has %d entries, byCategory has %d", len(got.Flat), total)
	}
	for _, skill := range got.Flat {
		found := 0
		for _, skills := range got.ByCategory {
			for _, s := range skills {
				if s == skill {
					found++
				}
			}
		}
		if found != 1 {
			t.Fatalf("skill %q appears in %d categories", skill, found)
		}
	}
}

func TestExtractSkillsPathologicalInput(t *testing.T) {
	punct := strings.Repeat("!@#$%^&*()", 200)
	if got := ExtractSkills(punct); len(got.Flat) != 0 {
		t.Fatalf("expected no matches in punctuation, got %v", got.Flat)
	}

	long := strings.Repeat("lorem ipsum dolor sit amet ", 10000)
	if got := ExtractSkills(long); len(got.Flat) != 0 {
		t.Fatalf("expected no matches in long filler text, got %v", got.Flat)
	}
}
