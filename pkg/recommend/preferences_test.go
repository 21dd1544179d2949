package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveWeightsNormalizes(t *testing.T) {
	tests := []struct {
		name       string
		importance map[string]float64
		want       map[string]float64
	}{
		{
			name:       "two criteria equal ratings",
			importance: map[string]float64{CriterionTuitionCost: 5, CriterionRanking: 5},
			want:       map[string]float64{CriterionTuitionCost: 0.5, CriterionRanking: 0.5},
		},
		{
			name:       "uneven ratings",
			importance: map[string]float64{CriterionAcademicFit: 8, CriterionTuitionCost: 2},
			want:       map[string]float64{CriterionAcademicFit: 0.8, CriterionTuitionCost: 0.2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveWeights(tt.importance)
			for criterion, w := range tt.want {
				assert.InDelta(t, w, got[criterion], 1e-9)
			}
			assert.True(t, WeightSumValid(got))
		})
	}
}

func TestDeriveWeightsDefaults(t *testing.T) {
	for _, importance := range []map[string]float64{nil, {}} {
		got := DeriveWeights(importance)
		require.Len(t, got, 7)
		assert.True(t, WeightSumValid(got))
		assert.InDelta(t, 0.25, got[CriterionTuitionCost], 1e-9)
		assert.InDelta(t, 0.05, got[CriterionLanguage], 1e-9)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	prefs := PreferenceSet{DegreeLevel: "Master"}
	err := prefs.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "field_of_study", verr.Field)

	prefs = PreferenceSet{FieldOfStudy: "Computer Science"}
	err = prefs.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "degree_level", verr.Field)

	prefs = PreferenceSet{
		FieldOfStudy: "Computer Science",
		DegreeLevel:  "Master",
		Importance:   map[string]float64{CriterionRanking: -1},
	}
	require.Error(t, prefs.Validate())

	prefs.Importance = map[string]float64{CriterionRanking: 3}
	require.NoError(t, prefs.Validate())
}

func TestApplyDefaults(t *testing.T) {
	prefs := PreferenceSet{FieldOfStudy: "Business", DegreeLevel: "Master"}
	prefs.ApplyDefaults()

	assert.Equal(t, float64(defaultMaxTuition), prefs.MaxTuition)
	assert.Equal(t, defaultLanguage, prefs.Language)
	assert.Equal(t, LanguageWithTrack, prefs.LanguageMode)

	// Explicit values survive.
	prefs = PreferenceSet{MaxTuition: 20000, Language: "German", LanguageMode: LanguageStrict}
	prefs.ApplyDefaults()
	assert.Equal(t, 20000.0, prefs.MaxTuition)
	assert.Equal(t, "German", prefs.Language)
	assert.Equal(t, LanguageStrict, prefs.LanguageMode)
}
