package recommend

// Diversity bonuses rewarding the first occurrence of a country,
// university, and field while walking the table in score order.
const (
	countryBonus    = 0.03
	universityBonus = 0.02
	fieldBonus      = 0.01
)

// ApplyDiversity walks the already-sorted table once, granting each
// distinct country, university, and field an additive bonus at its first
// occurrence, then re-sorts. The pass is greedy and order-dependent on
// purpose: it rewards the first novel value encountered in score order
// rather than computing a globally diverse set.
func ApplyDiversity(scored []ScoredProgram) []ScoredProgram {
	if len(scored) == 0 {
		return scored
	}

	countriesSeen := make(map[string]bool)
	universitiesSeen := make(map[string]bool)
	fieldsSeen := make(map[string]bool)

	diverse := make([]ScoredProgram, len(scored))
	for i, sp := range scored {
		bonus := 0.0
		if !countriesSeen[sp.Program.Country] {
			bonus += countryBonus
			countriesSeen[sp.Program.Country] = true
		}
		if !universitiesSeen[sp.Program.University] {
			bonus += universityBonus
			universitiesSeen[sp.Program.University] = true
		}
		if !fieldsSeen[sp.Program.Field] {
			bonus += fieldBonus
			fieldsSeen[sp.Program.Field] = true
		}

		sp.DiversityBonus = bonus
		sp.FinalScore += bonus
		sp.MatchPercentage = matchPercentage(sp.FinalScore)
		diverse[i] = sp
	}

	sortByFinalScore(diverse)
	return diverse
}
