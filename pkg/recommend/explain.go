package recommend

import (
	"fmt"
	"strings"

	"uni_recommender/pkg/cohort"
)

// satisfiedThreshold is the minimum satisfaction rating for a neighbor to
// count as a positive outcome in explanations.
const satisfiedThreshold = 7

// GenerateExplanations builds one short justification string per
// candidate, for up to limit candidates, in the same order as the input
// table. Callers merging explanations back onto results rely on that
// alignment.
func GenerateExplanations(scored []ScoredProgram, prefs PreferenceSet, neighbors []cohort.Record, limit int) []string {
	if limit > len(scored) {
		limit = len(scored)
	}

	explanations := make([]string, 0, limit)
	for _, sp := range scored[:limit] {
		var reasons []string

		if sp.Scores[CriterionAcademicFit] > 0.7 {
			reasons = append(reasons, "Strong match with your academic interests")
		}
		if sp.Scores[CriterionTuitionCost] > 0.8 {
			reasons = append(reasons, fmt.Sprintf("Fits well within your budget at $%.0f/year", sp.Program.TuitionPerYear))
		}
		if sp.Scores[CriterionRanking] > 0.7 && sp.Program.RankGlobal != nil {
			reasons = append(reasons, fmt.Sprintf("Well-ranked institution (#%d globally)", *sp.Program.RankGlobal))
		}
		if containsFold(prefs.PreferredCountries, sp.Program.Country) {
			reasons = append(reasons, fmt.Sprintf("Located in your preferred country (%s)", sp.Program.Country))
		}
		if languageMatches(sp.Program.Language, prefs) {
			reasons = append(reasons, "Matches your language preferences")
		}

		explanation := "Recommended because: " + strings.Join(reasons, "; ")
		if sentence := cohortSentence(sp, neighbors); sentence != "" {
			explanation += ". " + sentence
		}
		explanations = append(explanations, explanation)
	}
	return explanations
}

func languageMatches(programLanguage string, prefs PreferenceSet) bool {
	if prefs.LanguageMode != LanguageStrict && prefs.LanguageMode != LanguageWithTrack {
		return false
	}
	return prefs.Language != "" &&
		strings.Contains(strings.ToLower(programLanguage), strings.ToLower(prefs.Language))
}

// cohortSentence reports when similar past students chose the candidate's
// country and were satisfied with the outcome.
func cohortSentence(sp ScoredProgram, neighbors []cohort.Record) string {
	if sp.CohortBoost <= 0 {
		return ""
	}
	for _, n := range neighbors {
		if n.DestinationCountry == sp.Program.Country && n.Satisfaction >= satisfiedThreshold {
			return fmt.Sprintf("Similar students to your profile have been satisfied with programs in %s.", sp.Program.Country)
		}
	}
	return ""
}
