package recommend

import (
	"fmt"
	"math"
)

// Defaults applied when a preference set omits optional fields, matching
// the values the serving layer has always assumed.
const (
	defaultMaxTuition = 50000
	defaultLanguage   = "English"
)

// defaultWeights are the built-in criterion weights used when no
// importance ratings are supplied.
var defaultWeights = map[string]float64{
	CriterionAcademicFit: 0.20,
	CriterionTuitionCost: 0.25,
	CriterionLivingCost:  0.10,
	CriterionRanking:     0.15,
	CriterionCareer:      0.15,
	CriterionLocation:    0.10,
	CriterionLanguage:    0.05,
}

// ValidationError reports a malformed preference set. It is the only hard
// error the pipeline surfaces; everything else degrades to defaults.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid preferences: %s %s", e.Field, e.Reason)
}

// Validate checks the required fields. It must pass before filtering
// begins.
func (p *PreferenceSet) Validate() error {
	if p.FieldOfStudy == "" {
		return &ValidationError{Field: "field_of_study", Reason: "is required"}
	}
	if p.DegreeLevel == "" {
		return &ValidationError{Field: "degree_level", Reason: "is required"}
	}
	for criterion, rating := range p.Importance {
		if rating < 0 {
			return &ValidationError{
				Field:  "criteria_importance." + criterion,
				Reason: "must not be negative",
			}
		}
	}
	return nil
}

// ApplyDefaults fills optional fields so downstream stages never see an
// unusable preference set.
func (p *PreferenceSet) ApplyDefaults() {
	if p.MaxTuition <= 0 {
		p.MaxTuition = defaultMaxTuition
	}
	if p.Language == "" {
		p.Language = defaultLanguage
	}
	if p.LanguageMode == "" {
		p.LanguageMode = LanguageWithTrack
	}
}

// DeriveWeights normalizes raw importance ratings into criterion weights
// summing to 1.0. Criteria absent from the ratings get zero weight. With
// no ratings at all the built-in default weights apply.
func DeriveWeights(importance map[string]float64) map[string]float64 {
	total := 0.0
	for _, rating := range importance {
		total += rating
	}
	if total <= 0 {
		weights := make(map[string]float64, len(defaultWeights))
		for criterion, w := range defaultWeights {
			weights[criterion] = w
		}
		return weights
	}

	weights := make(map[string]float64, len(importance))
	for criterion, rating := range importance {
		weights[criterion] = rating / total
	}
	return weights
}

// WeightSumValid reports whether weights sum to 1.0 within floating
// tolerance. The scorer relies on this invariant.
func WeightSumValid(weights map[string]float64) bool {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	return math.Abs(sum-1.0) < 1e-9
}
