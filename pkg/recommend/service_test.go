package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uni_recommender/pkg/catalog"
	"uni_recommender/pkg/cohort"
)

func testCountries() []catalog.Country {
	return []catalog.Country{
		{Name: "Germany", Code: "DE", Region: "Europe", Language: "German", AverageLivingCost: 950, SafetyIndex: 78},
		{Name: "Canada", Code: "CA", Region: "North America", Language: "English", AverageLivingCost: 1300, SafetyIndex: 80},
	}
}

func testCohortStore(t *testing.T) *cohort.Store {
	t.Helper()
	ds := &cohort.Dataset{
		Records: []cohort.Record{
			{StudentID: 1, GPA: 3.6, TuitionBudget: 20000, DestinationCountry: "Germany", Satisfaction: 8},
			{StudentID: 2, GPA: 3.4, TuitionBudget: 25000, DestinationCountry: "Germany", Satisfaction: 9},
			{StudentID: 3, GPA: 2.9, TuitionBudget: 60000, DestinationCountry: "Canada", Satisfaction: 6},
			{StudentID: 4, GPA: 3.0, TuitionBudget: math.NaN(), DestinationCountry: "", Satisfaction: math.NaN()},
		},
		Columns: map[string]bool{
			cohort.ColGPA:           true,
			cohort.ColTuitionBudget: true,
		},
	}
	idx, err := cohort.Build(ds)
	require.NoError(t, err)

	store := cohort.NewStore()
	store.Publish(idx)
	return store
}

func TestServiceRecommendEndToEnd(t *testing.T) {
	svc := NewService(testPrograms(), testCountries(), testCohortStore(t), 10)

	gpa := 3.5
	result, err := svc.Recommend(PreferenceSet{
		FieldOfStudy:      "computer science",
		DegreeLevel:       "Master",
		MaxTuition:        60000,
		MaxLivingExpenses: 2000,
		Language:          "English",
		LanguageMode:      LanguageWithTrack,
		GPA:               &gpa,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Programs)
	assert.Len(t, result.Explanations, len(result.Programs))

	for i, sp := range result.Programs {
		assert.GreaterOrEqual(t, sp.Confidence, 0.7)
		assert.LessOrEqual(t, sp.MatchPercentage, 100.0)
		assert.Equal(t, result.Explanations[i], sp.Explanation)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Programs[i-1].FinalScore, sp.FinalScore)
		}
	}
}

func TestServiceRecommendValidationError(t *testing.T) {
	svc := NewService(testPrograms(), testCountries(), nil, 10)

	_, err := svc.Recommend(PreferenceSet{DegreeLevel: "Master"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "field_of_study", verr.Field)
}

func TestServiceRecommendEmptyResultIsValid(t *testing.T) {
	svc := NewService(testPrograms(), testCountries(), nil, 10)

	result, err := svc.Recommend(PreferenceSet{
		FieldOfStudy: "astrobotany",
		DegreeLevel:  "Master",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Programs)
	assert.Empty(t, result.Explanations)
}

func TestServiceRecommendTrimsToTopN(t *testing.T) {
	svc := NewService(testPrograms(), testCountries(), nil, 2)

	result, err := svc.Recommend(PreferenceSet{
		FieldOfStudy: "master",
		DegreeLevel:  "Master",
	})
	require.NoError(t, err)
	assert.Len(t, result.Programs, 2)
	assert.Len(t, result.Explanations, 2)
}

func TestServiceRecommendWithoutCohortIndex(t *testing.T) {
	svc := NewService(testPrograms(), testCountries(), nil, 10)

	result, err := svc.Recommend(PreferenceSet{
		FieldOfStudy: "computer science",
		DegreeLevel:  "Master",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Programs)
	for _, sp := range result.Programs {
		assert.Zero(t, sp.CohortBoost)
	}
}

func TestServiceSimilarStudents(t *testing.T) {
	svc := NewService(testPrograms(), testCountries(), testCohortStore(t), 10)

	gpa := 3.5
	budget := 22000.0
	records, err := svc.SimilarStudents(PreferenceSet{GPA: &gpa, MaxTuition: budget}, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// The two Germany-bound students sit closest to this profile.
	assert.Equal(t, "Germany", records[0].DestinationCountry)
	assert.Equal(t, "Germany", records[1].DestinationCountry)
}

func TestServiceSimilarStudentsWithoutIndex(t *testing.T) {
	svc := NewService(testPrograms(), testCountries(), nil, 10)

	_, err := svc.SimilarStudents(PreferenceSet{}, 5)
	assert.ErrorIs(t, err, cohort.ErrNotBuilt)
}
