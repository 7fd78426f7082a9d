package analyses

import (
	"strings"
	"testing"
)

func TestGeneratePlanFixedStructure(t *testing.T) {
	wantLabels := []struct{ day, focus string }{
		{"Day 1-2", "Basics + Core CS"},
		{"Day 3-4", "DSA + Coding Practice"},
		{"Day 5", "Project + Resume Alignment"},
		{"Day 6", "Mock Interview Questions"},
		{"Day 7", "Revision + Weak Areas"},
	}

	for _, ext := range []Extraction{
		{ByCategory: map[string][]string{}},
		ExtractSkills("java, react, sql, docker and dsa"),
	} {
		plan := GeneratePlan(ext.Flat, ext)
		if len(plan) != 5 {
			t.Fatalf("expected 5 plan entries, got %d", len(plan))
		}
		for i, entry := range plan {
			if entry.Day != wantLabels[i].day || entry.Focus != wantLabels[i].focus {
				t.Fatalf("entry %d: expected %q/%q, got %q/%q", i, wantLabels[i].day, wantLabels[i].focus, entry.Day, entry.Focus)
			}
			if len(entry.Items) != 3 {
				t.Fatalf("entry %d: expected 3 items, got %d", i, len(entry.Items))
			}
		}
	}
}

func TestGeneratePlanCoreCSBranch(t *testing.T) {
	withCore := ExtractSkills("dsa and algorithms practice")
	plan := GeneratePlan(withCore.Flat, withCore)
	if plan[0].Items[1] != "Deep dive into OS & DBMS concepts" {
		t.Fatalf("expected OS/DBMS item with Core CS detected, got %q", plan[0].Items[1])
	}

	noCore := ExtractSkills("react only")
	plan = GeneratePlan(noCore.Flat, noCore)
	if plan[0].Items[1] != "Review General aptitude and logic" {
		t.Fatalf("expected aptitude item without Core CS, got %q", plan[0].Items[1])
	}
}

func TestGeneratePlanStackInterpolation(t *testing.T) {
	ext := ExtractSkills("java, python, react and sql")
	plan := GeneratePlan(ext.Flat, ext)

	// First three flat skills in taxonomy order.
	wantStack := "java, python, react"
	if got := plan[2].Items[0]; got != "Review projects using "+wantStack {
		t.Fatalf("unexpected project item: %q", got)
	}
	if got := plan[3].Items[1]; got != "Technical deep dive into "+wantStack {
		t.Fatalf("unexpected deep-dive item: %q", got)
	}
}

func TestGeneratePlanDefaultStack(t *testing.T) {
	empty := Extraction{ByCategory: map[string][]string{}}
	plan := GeneratePlan(nil, empty)
	if !strings.Contains(plan[2].Items[0], "General fresher stack") {
		t.Fatalf("expected default stack phrase, got %q", plan[2].Items[0])
	}
}
