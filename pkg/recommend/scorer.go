package recommend

import (
	"math"
	"sort"
	"strings"

	"uni_recommender/pkg/catalog"
)

// Coarse world-region groupings used for the location score. A candidate
// country in the same region as a preferred country earns partial credit.
var regions = map[string][]string{
	"europe": {"germany", "france", "italy", "spain", "netherlands",
		"belgium", "austria", "switzerland", "uk", "united kingdom", "ireland", "sweden"},
	"north_america": {"usa", "united states", "canada", "mexico"},
	"asia":          {"china", "japan", "south korea", "singapore", "india", "malaysia"},
	"oceania":       {"australia", "new zealand"},
}

// ExtractKeywords tokenizes free text into lowercase keywords longer than
// two characters, splitting on spaces and common separators.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := strings.NewReplacer(",", " ", ";", " ").Replace(strings.ToLower(text))
	var keywords []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

// academicFit scores keyword overlap between the stated field of interest
// and the program's name and field text.
func academicFit(p catalog.Program, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.5
	}
	text := strings.ToLower(p.Name + " " + p.Field)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	return clamp01(float64(matches) / float64(len(keywords)))
}

// tuitionFit rewards programs priced well under the budget ceiling. Free
// programs score 1.0; programs at or above the ceiling score 0.
func tuitionFit(tuition, maxTuition float64) float64 {
	if tuition <= 0 {
		return 1.0
	}
	if maxTuition <= 0 {
		return 0.5
	}
	return clamp01((maxTuition - tuition) / maxTuition)
}

// rankingFit is a deliberately coarse step function of global rank. A
// program with no known rank falls through to the floor.
func rankingFit(rank *int) float64 {
	if rank == nil {
		return 0.3
	}
	switch r := *rank; {
	case r <= 10:
		return 1.0
	case r <= 50:
		return 0.9
	case r <= 100:
		return 0.8
	case r <= 200:
		return 0.7
	case r <= 500:
		return 0.5
	default:
		return 0.3
	}
}

// livingCostFit uses country-level average living cost when available and
// degrades to 0.7 without it.
func livingCostFit(country string, countries map[string]catalog.Country, maxLiving float64) float64 {
	c, ok := countries[strings.ToLower(country)]
	if !ok {
		return 0.7
	}
	if maxLiving <= 0 {
		return 0.5
	}
	return clamp01((maxLiving - c.AverageLivingCost) / maxLiving)
}

// careerFit is a constant placeholder until a real career-outcome signal
// is modeled.
func careerFit() float64 {
	return 0.7
}

// locationFit scores country preference: full credit inside the preferred
// set, partial for the same region, baseline otherwise.
func locationFit(country string, preferred []string) float64 {
	if len(preferred) == 0 {
		return 0.5
	}
	if containsFold(preferred, country) {
		return 1.0
	}
	if inSameRegion(country, preferred) {
		return 0.7
	}
	return 0.5
}

func inSameRegion(country string, preferred []string) bool {
	countryRegion := regionOf(country)
	if countryRegion == "" {
		return false
	}
	for _, p := range preferred {
		if regionOf(p) == countryRegion {
			return true
		}
	}
	return false
}

func regionOf(country string) string {
	lower := strings.ToLower(country)
	for region, members := range regions {
		for _, m := range members {
			if m == lower {
				return region
			}
		}
	}
	return ""
}

// languageFit scores the language preference modes: strict match, a
// preferred-language track, or open to learning.
func languageFit(programLanguage string, prefs PreferenceSet) float64 {
	match := prefs.Language != "" &&
		strings.Contains(strings.ToLower(programLanguage), strings.ToLower(prefs.Language))

	switch prefs.LanguageMode {
	case LanguageStrict:
		if match {
			return 1.0
		}
		return 0.0
	case LanguageWithTrack:
		if match {
			return 1.0
		}
		return 0.5
	case LanguageOpen:
		return 0.8
	default:
		return 0.5
	}
}

// confidenceFor discounts recommendations built on sparse records. Six
// attributes are checked; tuition is non-null by load contract, the rest
// may be missing. The result is scaled into [0.7, 1.0].
func confidenceFor(p catalog.Program) float64 {
	present := 1 // tuition_per_year
	if p.Name != "" {
		present++
	}
	if p.University != "" {
		present++
	}
	if p.RankGlobal != nil {
		present++
	}
	if p.Language != "" {
		present++
	}
	if p.DurationYears != nil {
		present++
	}
	return 0.7 + 0.3*(float64(present)/6.0)
}

// Score computes every criterion sub-score, the confidence factor, and
// the weighted final score for each candidate, returning the table sorted
// by final score descending (ties broken by ascending program id).
func Score(candidates []catalog.Program, prefs PreferenceSet, weights map[string]float64, countries map[string]catalog.Country) []ScoredProgram {
	keywords := ExtractKeywords(prefs.FieldOfStudy)

	scored := make([]ScoredProgram, 0, len(candidates))
	for _, p := range candidates {
		scores := map[string]float64{
			CriterionAcademicFit: academicFit(p, keywords),
			CriterionTuitionCost: tuitionFit(p.TuitionPerYear, prefs.MaxTuition),
			CriterionLivingCost:  livingCostFit(p.Country, countries, prefs.MaxLivingExpenses),
			CriterionRanking:     rankingFit(p.RankGlobal),
			CriterionCareer:      careerFit(),
			CriterionLocation:    locationFit(p.Country, prefs.PreferredCountries),
			CriterionLanguage:    languageFit(p.Language, prefs),
		}

		confidence := confidenceFor(p)
		final := 0.0
		for criterion, weight := range weights {
			final += scores[criterion] * weight
		}
		final *= confidence

		scored = append(scored, ScoredProgram{
			Program:         p,
			Scores:          scores,
			Confidence:      confidence,
			FinalScore:      final,
			MatchPercentage: matchPercentage(final),
		})
	}

	sortByFinalScore(scored)
	return scored
}

// matchPercentage converts a final score to a displayed percentage,
// rounded to one decimal and capped at 100. The underlying score itself
// is deliberately left uncapped.
func matchPercentage(finalScore float64) float64 {
	pct := math.Round(finalScore*100*10) / 10
	return math.Min(100, pct)
}

// sortByFinalScore orders descending by final score with ascending
// program id as the deterministic tie-break.
func sortByFinalScore(scored []ScoredProgram) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].FinalScore != scored[j].FinalScore {
			return scored[i].FinalScore > scored[j].FinalScore
		}
		return scored[i].Program.ID < scored[j].Program.ID
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
