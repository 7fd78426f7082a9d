package analyses

import (
	"strings"
	"unicode/utf8"
)

const (
	scoreBase            = 35
	scorePerCategory     = 5
	scoreCategoryCap     = 30
	scoreMetadataBonus   = 10
	scoreLengthBonus     = 10
	scoreLengthThreshold = 800
	scoreMax             = 100
)

// CalculateScore computes the heuristic readiness score in [35,100].
// Base 35, +5 per detected category (capped at +30), +10 each for a
// non-blank company and role, +10 when the JD text exceeds 800 characters.
// The final clamp at 100 is kept even though the bonuses top out at 95.
func CalculateScore(extracted Extraction, company, role, jdText string) int {
	score := scoreBase

	categoryBonus := len(extracted.ByCategory) * scorePerCategory
	if categoryBonus > scoreCategoryCap {
		categoryBonus = scoreCategoryCap
	}
	score += categoryBonus

	if strings.TrimSpace(company) != "" {
		score += scoreMetadataBonus
	}
	if strings.TrimSpace(role) != "" {
		score += scoreMetadataBonus
	}
	if utf8.RuneCountInString(jdText) > scoreLengthThreshold {
		score += scoreLengthBonus
	}

	if score > scoreMax {
		score = scoreMax
	}
	return score
}
