package analyses

import "regexp"

// keywordPatterns holds one compiled matcher per taxonomy keyword, built once
// at init. A keyword matches as a whole token: the characters adjacent to the
// literal must not be alphanumeric, so "sql" never fires inside "postgresql"
// while punctuated keywords like "c++" or "node.js" still match literally.
var keywordPatterns = buildKeywordPatterns()

func buildKeywordPatterns() []map[string]*regexp.Regexp {
	patterns := make([]map[string]*regexp.Regexp, len(taxonomy))
	for i, group := range taxonomy {
		byKeyword := make(map[string]*regexp.Regexp, len(group.Keywords))
		for _, kw := range group.Keywords {
			byKeyword[kw] = regexp.MustCompile(`(?i)(^|[^a-z0-9])` + regexp.QuoteMeta(kw) + `($|[^a-z0-9])`)
		}
		patterns[i] = byKeyword
	}
	return patterns
}

// ExtractSkills scans text for taxonomy keywords, case-insensitively.
// Categories with no matches are omitted from ByCategory; each keyword
// appears at most once regardless of how often it occurs in the text.
// Empty text yields an empty extraction, never an error.
func ExtractSkills(text string) Extraction {
	result := Extraction{
		ByCategory: make(map[string][]string),
		Flat:       []string{},
	}
	if text == "" {
		return result
	}

	for i, group := range taxonomy {
		var found []string
		for _, kw := range group.Keywords {
			if keywordPatterns[i][kw].MatchString(text) {
				found = append(found, kw)
			}
		}
		if len(found) > 0 {
			result.ByCategory[group.Category.Label()] = found
			result.Flat = append(result.Flat, found...)
		}
	}
	return result
}
