package analyses

import "strings"

const maxQuestions = 10

var genericQuestions = []string{
	"How would you optimize search in sorted data?",
	"Explain a challenging bug you fixed recently.",
	"Design a URL shortener system (High level).",
	"Check for balanced parentheses in a string.",
	"Explain the concept of Polymorphism with real-world example.",
	"Find the Kth largest element in an array.",
}

// GenerateQuestions assembles likely interview questions from skill-specific
// pools plus the generic fallback pool, deduplicated in first-occurrence
// order and capped at ten.
func GenerateQuestions(extracted Extraction) []string {
	languages := extracted.ByCategory[CategoryLanguages.Label()]
	web := extracted.ByCategory[CategoryWeb.Label()]
	data := extracted.ByCategory[CategoryData.Label()]
	coreCS := extracted.ByCategory[CategoryCoreCS.Label()]

	questions := make([]string, 0, maxQuestions+len(genericQuestions))
	if anyContains(languages, "java") {
		questions = append(questions,
			"Explain the difference between JDK, JRE, and JVM.",
			"How does Garbage Collection work in Java?",
		)
	}
	if anyContains(languages, "python") {
		questions = append(questions,
			"Explain the difference between list and tuple.",
			"How is memory managed in Python?",
		)
	}
	// javascript / typescript
	if anyContains(languages, "script") {
		questions = append(questions,
			"Explain Event Loop and Closures.",
			"Difference between == and ===?",
		)
	}
	if anyContains(web, "react") {
		questions = append(questions,
			"Explain React Lifecycle methods vs Hooks.",
			"How does Virtual DOM work?",
		)
	}
	if anyContains(data, "sql") {
		questions = append(questions,
			"Explain Indexing and when it helps.",
			"Difference between DELETE and TRUNCATE?",
		)
	}
	if len(coreCS) > 0 {
		questions = append(questions,
			"Explain the difference between Process and Thread.",
			"What is Deadlock and how to prevent it?",
		)
	}

	questions = append(questions, genericQuestions...)

	seen := make(map[string]bool, len(questions))
	out := make([]string, 0, maxQuestions)
	for _, q := range questions {
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
		if len(out) == maxQuestions {
			break
		}
	}
	return out
}

func anyContains(skills []string, marker string) bool {
	for _, s := range skills {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
