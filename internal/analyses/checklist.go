package analyses

import "strings"

// Round names of the generated checklist, in interview order. The map form of
// the checklist loses ordering, so the presentation layer iterates these.
var ChecklistRounds = []string{
	"Round 1: Aptitude / Basics",
	"Round 2: DSA + Core CS",
	"Round 3: Tech Interview",
	"Round 4: Managerial / HR",
}

// GenerateChecklist builds the per-round preparation checklist: four fixed
// rounds of five items. Only the tech round's first item depends on the
// detected skills.
func GenerateChecklist(flatSkills []string) map[string][]string {
	stack := "Java/Python"
	if len(flatSkills) > 0 {
		stack = strings.Join(flatSkills, ", ")
	}

	return map[string][]string{
		ChecklistRounds[0]: {
			"Quantitative Aptitude (Time & Work, Probability)",
			"Logical Reasoning (Puzzles, Series)",
			"Verbal Ability (Reading Comprehension)",
			"Basic Debugging / Output prediction",
			"Time Complexity analysis",
		},
		ChecklistRounds[1]: {
			"Data Structures (Arrays, Linked Lists, Trees)",
			"Algorithms (Sorting, Searching, Recursion)",
			"Object Oriented Programming concepts",
			"DBMS (SQL Queries, Normalization)",
			"Operating Systems (Processes, Threads, Memory Mgmt)",
		},
		ChecklistRounds[2]: {
			"Deep discussion on " + stack,
			"Project Architecture and Design choices",
			"Rest API / System Design basics",
			"Live coding / pair programming",
			"Code optimization and clean code practices",
		},
		ChecklistRounds[3]: {
			"Why this company? / Why this role?",
			"Strengths and Weaknesses",
			"Situation handling (Conflict resolution)",
			"Future goals (Short term / Long term)",
			"Salary expectations and negotiation",
		},
	}
}
