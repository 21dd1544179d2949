// Package recommend implements the program recommendation pipeline:
// hard-constraint filtering, multi-criterion weighted scoring with a
// data-completeness confidence discount, diversity-aware re-ranking, a
// cohort-similarity boost from historical student outcomes, and
// explanation generation.
//
// Every stage is a pure function over an input slice and immutable
// reference data; stages never mutate their input, so concurrent
// recommendation requests can share the same catalog snapshot.
package recommend

import "uni_recommender/pkg/catalog"

// Scoring criteria. Each is one weighted axis of evaluation.
const (
	CriterionAcademicFit = "academic_fit"
	CriterionTuitionCost = "tuition_cost"
	CriterionLivingCost  = "living_cost"
	CriterionRanking     = "university_ranking"
	CriterionCareer      = "career_prospects"
	CriterionLocation    = "location"
	CriterionLanguage    = "language"
)

// LanguageMode enumerates how strictly the language preference applies.
type LanguageMode string

const (
	// LanguageStrict admits only programs taught in the preferred language.
	LanguageStrict LanguageMode = "strict"
	// LanguageWithTrack admits any program but scores ones with a
	// preferred-language track higher.
	LanguageWithTrack LanguageMode = "preferred_track"
	// LanguageOpen means the student is open to learning a new language.
	LanguageOpen LanguageMode = "open_to_learning"
)

// PreferenceSet is the user input consumed by the pipeline. Importance
// carries raw per-criterion ratings (1-10); weights are derived from them,
// never supplied pre-normalized.
type PreferenceSet struct {
	FieldOfStudy       string             `json:"field_of_study"`
	DegreeLevel        string             `json:"degree_level"`
	MaxTuition         float64            `json:"max_tuition"`
	MaxLivingExpenses  float64            `json:"max_living_expenses"`
	PreferredCountries []string           `json:"preferred_countries"`
	Language           string             `json:"language"`
	LanguageMode       LanguageMode       `json:"language_preference"`
	GPA                *float64           `json:"gpa,omitempty"`
	Importance         map[string]float64 `json:"criteria_importance,omitempty"`
}

// ScoredProgram is a catalog program augmented with scoring state. Values
// are constructed fresh per request; stages copy rather than mutate.
type ScoredProgram struct {
	Program         catalog.Program    `json:"program"`
	Scores          map[string]float64 `json:"scores"`
	Confidence      float64            `json:"confidence"`
	FinalScore      float64            `json:"final_score"`
	MatchPercentage float64            `json:"match_percentage"`
	DiversityBonus  float64            `json:"diversity_bonus,omitempty"`
	CohortBoost     float64            `json:"cohort_boost,omitempty"`
	Explanation     string             `json:"explanation,omitempty"`
}
