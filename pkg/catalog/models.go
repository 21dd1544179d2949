package catalog

// Program is one degree program offered by a university, joined with its
// university's location and ranking data. Loaded once at startup and never
// mutated by scoring.
//
// Fields that the source data may leave empty are nullable; scoring treats
// them as best-effort and falls back to documented defaults.
type Program struct {
	ID             int     `json:"id"`
	Name           string  `json:"name_program"`
	University     string  `json:"name_university"`
	Country        string  `json:"country"`
	City           string  `json:"city"`
	Field          string  `json:"field"`
	Level          string  `json:"level"`
	Language       string  `json:"language"`
	DurationYears  *int    `json:"duration,omitempty"`
	TuitionPerYear float64 `json:"tuition_per_year"`
	ApplicationFee float64 `json:"application_fee"`
	RankGlobal     *int    `json:"ranking_global,omitempty"`
}

// Country carries auxiliary country-level data used for living-cost
// scoring. The countries table is optional; a catalog without it degrades
// to default living-cost scores.
type Country struct {
	Name              string  `json:"name"`
	Code              string  `json:"code"`
	Region            string  `json:"region"`
	Language          string  `json:"language"`
	AverageLivingCost float64 `json:"average_living_cost"`
	SafetyIndex       int     `json:"safety_index"`
}
