package analyses

import "strings"

const defaultStack = "General fresher stack"

// GeneratePlan builds the 7-day study plan: five fixed entries whose content
// varies only with the detected skills. Entry one deepens into OS/DBMS when
// Core CS skills were found; the project and mock-interview entries name a
// stack built from the first three flat skills.
func GeneratePlan(flatSkills []string, extracted Extraction) []PlanDay {
	hasCore := len(extracted.ByCategory[CategoryCoreCS.Label()]) > 0

	stack := defaultStack
	if len(flatSkills) > 0 {
		top := flatSkills
		if len(top) > 3 {
			top = top[:3]
		}
		stack = strings.Join(top, ", ")
	}

	coreItem := "Review General aptitude and logic"
	if hasCore {
		coreItem = "Deep dive into OS & DBMS concepts"
	}

	return []PlanDay{
		{
			Day:   "Day 1-2",
			Focus: "Basics + Core CS",
			Items: []string{
				"Revise Language Fundamentals (OOP, Syntax)",
				coreItem,
				"Solve 5 basic implementation problems",
			},
		},
		{
			Day:   "Day 3-4",
			Focus: "DSA + Coding Practice",
			Items: []string{
				"Focus on Arrays, Strings, and Maps",
				"Practice 2-pointer and Sliding Window patterns",
				"Solve 3 Medium LeetCode problems daily",
			},
		},
		{
			Day:   "Day 5",
			Focus: "Project + Resume Alignment",
			Items: []string{
				"Review projects using " + stack,
				`Prepare "Challenges Faced" stories`,
				"Optimize resume keywords for this JD",
			},
		},
		{
			Day:   "Day 6",
			Focus: "Mock Interview Questions",
			Items: []string{
				"Behavioral questions (STAR method)",
				"Technical deep dive into " + stack,
				"Mock interview with a peer or AI",
			},
		},
		{
			Day:   "Day 7",
			Focus: "Revision + Weak Areas",
			Items: []string{
				"Review notes and tricky concepts",
				"Rest and mental preparation",
				"Company research (Values, Products)",
			},
		},
	}
}
