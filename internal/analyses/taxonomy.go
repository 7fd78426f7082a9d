package analyses

// Category identifies one group of the skill taxonomy. The set is closed;
// generators switch on it exhaustively.
type Category int

const (
	CategoryCoreCS Category = iota
	CategoryLanguages
	CategoryWeb
	CategoryData
	CategoryCloud
	CategoryTesting
)

// Label returns the display name used as the ExtractedSkills map key.
func (c Category) Label() string {
	switch c {
	case CategoryCoreCS:
		return "Core CS"
	case CategoryLanguages:
		return "Languages"
	case CategoryWeb:
		return "Web Development"
	case CategoryData:
		return "Data & Databases"
	case CategoryCloud:
		return "Cloud & DevOps"
	case CategoryTesting:
		return "Testing"
	default:
		return "Unknown"
	}
}

// taxonomy is the fixed skill dictionary. Category order and keyword order
// within a category are stable for the process lifetime: flat-skill ordering,
// the plan's stack string, and question selection all depend on it.
var taxonomy = []struct {
	Category Category
	Keywords []string
}{
	{CategoryCoreCS, []string{"dsa", "oop", "dbms", "os", "networks", "operating systems", "computer networks", "data structures", "algorithms"}},
	{CategoryLanguages, []string{"java", "python", "javascript", "typescript", "c", "c++", "c#", "go", "ruby", "swift", "kotlin", "php"}},
	{CategoryWeb, []string{"react", "next.js", "node.js", "express", "rest", "graphql", "html", "css", "tailwind", "redux", "vue", "angular"}},
	{CategoryData, []string{"sql", "mongodb", "postgresql", "mysql", "redis", "firebase", "nosql", "oracle"}},
	{CategoryCloud, []string{"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd", "linux", "devops", "jenkins", "git"}},
	{CategoryTesting, []string{"selenium", "cypress", "playwright", "junit", "pytest", "jest", "mocha"}},
}
