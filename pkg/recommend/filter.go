package recommend

import (
	"strings"

	"uni_recommender/pkg/catalog"
)

// Filter applies the hard constraints in order: field-of-study substring
// match (against program name or field, either is enough), exact degree
// level, tuition ceiling, preferred-country membership, and under strict
// language preference an exact language match. An empty result is a valid
// terminal state, not an error.
func Filter(programs []catalog.Program, prefs PreferenceSet) []catalog.Program {
	field := strings.ToLower(prefs.FieldOfStudy)

	var candidates []catalog.Program
	for _, p := range programs {
		if field != "" {
			name := strings.ToLower(p.Name)
			programField := strings.ToLower(p.Field)
			if !strings.Contains(programField, field) && !strings.Contains(name, field) {
				continue
			}
		}

		if !strings.EqualFold(p.Level, prefs.DegreeLevel) {
			continue
		}

		if prefs.MaxTuition > 0 && p.TuitionPerYear > prefs.MaxTuition {
			continue
		}

		if len(prefs.PreferredCountries) > 0 && !containsFold(prefs.PreferredCountries, p.Country) {
			continue
		}

		// Language is a hard filter only in strict mode; the other modes
		// handle it as a soft score.
		if prefs.LanguageMode == LanguageStrict && !strings.EqualFold(p.Language, prefs.Language) {
			continue
		}

		candidates = append(candidates, p)
	}

	return candidates
}

func containsFold(values []string, item string) bool {
	for _, v := range values {
		if strings.EqualFold(v, item) {
			return true
		}
	}
	return false
}
