package recommend

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"uni_recommender/pkg/catalog"
	"uni_recommender/pkg/cohort"
)

// Service runs the recommendation pipeline against an immutable catalog
// snapshot and the currently published cohort index. It is safe for
// concurrent use; per-request state never escapes a call.
type Service struct {
	programs  []catalog.Program
	countries map[string]catalog.Country
	cohorts   *cohort.Store
	topN      int
}

// NewService builds a service over the loaded catalog. store may be
// empty; enhancement then degrades to a no-op.
func NewService(programs []catalog.Program, countries []catalog.Country, store *cohort.Store, topN int) *Service {
	byName := make(map[string]catalog.Country, len(countries))
	for _, c := range countries {
		byName[strings.ToLower(c.Name)] = c
	}
	if store == nil {
		store = cohort.NewStore()
	}
	return &Service{
		programs:  programs,
		countries: byName,
		cohorts:   store,
		topN:      topN,
	}
}

// Result is the response contract: an ordered candidate table plus
// parallel explanation strings.
type Result struct {
	Programs     []ScoredProgram `json:"programs"`
	Explanations []string        `json:"explanations"`
	Elapsed      time.Duration   `json:"-"`
}

// Recommend runs the full pipeline: validate, filter, score, diversify,
// enhance with the cohort index, and explain. An empty result is valid;
// the only hard error is preference validation.
func (s *Service) Recommend(prefs PreferenceSet) (*Result, error) {
	start := time.Now()

	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	prefs.ApplyDefaults()

	weights := DeriveWeights(prefs.Importance)

	candidates := Filter(s.programs, prefs)
	if len(candidates) == 0 {
		log.Debug().Str("field", prefs.FieldOfStudy).Msg("no programs match the hard constraints")
		return &Result{Programs: []ScoredProgram{}, Explanations: []string{}, Elapsed: time.Since(start)}, nil
	}

	scored := Score(candidates, prefs, weights, s.countries)
	scored = ApplyDiversity(scored)

	neighbors := s.neighbors(prefs)
	scored = EnhanceWithCohort(scored, neighbors)

	top := scored
	if len(top) > s.topN {
		top = top[:s.topN]
	}
	explanations := GenerateExplanations(top, prefs, neighbors, s.topN)
	for i := range explanations {
		top[i].Explanation = explanations[i]
	}

	log.Debug().
		Int("candidates", len(candidates)).
		Int("returned", len(top)).
		Int("neighbors", len(neighbors)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendation pipeline complete")

	return &Result{Programs: top, Explanations: explanations, Elapsed: time.Since(start)}, nil
}

// SimilarStudents answers a direct cohort-similarity query for the given
// preferences.
func (s *Service) SimilarStudents(prefs PreferenceSet, n int) ([]cohort.Record, error) {
	idx := s.cohorts.Current()
	if idx == nil {
		return nil, cohort.ErrNotBuilt
	}
	return idx.FindSimilar(cohortQueryFrom(prefs), n)
}

// neighbors fetches the similarity cohort for enhancement, returning nil
// when the index is unavailable. Enhancement is optional, never blocking.
func (s *Service) neighbors(prefs PreferenceSet) []cohort.Record {
	idx := s.cohorts.Current()
	if idx == nil {
		return nil
	}
	records, err := idx.FindSimilar(cohortQueryFrom(prefs), 10)
	if err != nil {
		log.Debug().Err(err).Msg("cohort lookup unavailable, skipping enhancement")
		return nil
	}
	return records
}

// cohortQueryFrom maps preference fields onto cohort feature columns.
// Importance ratings double as the sensitivity features the historical
// survey recorded.
func cohortQueryFrom(prefs PreferenceSet) cohort.Query {
	q := cohort.Query{GPA: prefs.GPA}
	if prefs.MaxTuition > 0 {
		v := prefs.MaxTuition
		q.TuitionBudget = &v
	}
	if prefs.MaxLivingExpenses > 0 {
		v := prefs.MaxLivingExpenses
		q.LivingBudget = &v
	}
	if rating, ok := prefs.Importance[CriterionRanking]; ok {
		v := rating
		q.RankingImportance = &v
	}
	if rating, ok := prefs.Importance[CriterionTuitionCost]; ok {
		v := rating
		q.CostSensitivity = &v
	}
	if rating, ok := prefs.Importance[CriterionCareer]; ok {
		v := rating
		q.CareerImportance = &v
	}
	return q
}
