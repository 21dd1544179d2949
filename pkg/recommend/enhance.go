package recommend

import "uni_recommender/pkg/cohort"

// cohortBoostCeiling caps the popularity boost a candidate can receive
// from the neighbor cohort.
const cohortBoostCeiling = 0.05

// EnhanceWithCohort boosts each candidate by how often the neighbor
// cohort ended up choosing its country: boost = frequency / total × 0.05.
// With no neighbors the input is returned unmodified; enhancement is
// strictly additive and optional.
func EnhanceWithCohort(scored []ScoredProgram, neighbors []cohort.Record) []ScoredProgram {
	if len(scored) == 0 || len(neighbors) == 0 {
		return scored
	}

	destinationCounts := make(map[string]int)
	total := 0
	for _, n := range neighbors {
		if n.DestinationCountry == "" {
			continue
		}
		destinationCounts[n.DestinationCountry]++
		total++
	}
	if total == 0 {
		return scored
	}

	enhanced := make([]ScoredProgram, len(scored))
	for i, sp := range scored {
		boost := float64(destinationCounts[sp.Program.Country]) / float64(total) * cohortBoostCeiling
		sp.CohortBoost = boost
		sp.FinalScore += boost
		sp.MatchPercentage = matchPercentage(sp.FinalScore)
		enhanced[i] = sp
	}

	sortByFinalScore(enhanced)
	return enhanced
}
