package analyses

import "time"

// Analysis is the persisted output of one job-description analysis.
type Analysis struct {
	ID              string              `json:"id"`
	CreatedAt       time.Time           `json:"createdAt"`
	Company         string              `json:"company"`
	Role            string              `json:"role"`
	JDText          string              `json:"jdText"`
	ExtractedSkills map[string][]string `json:"extractedSkills"`
	FlatSkills      []string            `json:"flatSkills"`
	ReadinessScore  int                 `json:"readinessScore"`
	Plan            []PlanDay           `json:"plan"`
	Checklist       map[string][]string `json:"checklist"`
	Questions       []string            `json:"questions"`
}

// PlanDay is one entry of the generated study plan.
type PlanDay struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Items []string `json:"items"`
}

// Extraction groups the skills detected in a job description.
// ByCategory is keyed by category display label and only contains
// categories with at least one match. Flat preserves taxonomy order:
// category order first, then keyword order within the category.
type Extraction struct {
	ByCategory map[string][]string
	Flat       []string
}
