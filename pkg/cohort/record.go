// Package cohort builds a nearest-neighbor index over historical student
// migration outcomes and answers similarity queries against it. The index
// is immutable once built; a Store publishes rebuilt indexes atomically so
// concurrent readers never observe a partial build.
package cohort

import "math"

// Feature and outcome column names in the migration dataset.
const (
	ColStudentID          = "student_id"
	ColFieldOfStudy       = "field_of_study"
	ColGPA                = "current_gpa"
	ColTuitionBudget      = "tuition_budget"
	ColLivingBudget       = "living_expense_budget"
	ColRankingImportance  = "university_ranking_importance"
	ColCostSensitivity    = "cost_sensitivity_score"
	ColCareerImportance   = "career_importance_score"
	ColSafetyImportance   = "safety_importance_score"
	ColConfidenceLevel    = "confidence_level_score"
	ColRiskTolerance      = "risk_tolerance_score"
	ColDestinationCountry = "final_destination_country"
	ColSatisfaction       = "decision_satisfaction_score"
)

// Record is one past decision outcome. Numeric fields hold NaN when the
// source row left them blank.
type Record struct {
	StudentID          int
	FieldOfStudy       string
	GPA                float64
	TuitionBudget      float64
	LivingBudget       float64
	RankingImportance  float64
	CostSensitivity    float64
	CareerImportance   float64
	SafetyImportance   float64
	ConfidenceLevel    float64
	RiskTolerance      float64
	DestinationCountry string
	Satisfaction       float64
}

// feature returns the named numeric column of the record, NaN when the
// column is unknown or the value missing.
func (r Record) feature(column string) float64 {
	switch column {
	case ColGPA:
		return r.GPA
	case ColTuitionBudget:
		return r.TuitionBudget
	case ColLivingBudget:
		return r.LivingBudget
	case ColRankingImportance:
		return r.RankingImportance
	case ColCostSensitivity:
		return r.CostSensitivity
	case ColCareerImportance:
		return r.CareerImportance
	case ColSafetyImportance:
		return r.SafetyImportance
	case ColConfidenceLevel:
		return r.ConfidenceLevel
	case ColRiskTolerance:
		return r.RiskTolerance
	default:
		return math.NaN()
	}
}

// Dataset is the loaded historical dataset plus the set of columns the
// source actually carried, so index building can restrict itself to
// columns that exist.
type Dataset struct {
	Records []Record
	Columns map[string]bool
}
