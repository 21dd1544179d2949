package cohort

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func gpaDataset(gpas ...float64) *Dataset {
	ds := &Dataset{Columns: map[string]bool{ColGPA: true}}
	for i, g := range gpas {
		ds.Records = append(ds.Records, Record{StudentID: i + 1, GPA: g})
	}
	return ds
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Build(&Dataset{Columns: map[string]bool{ColGPA: true}})
	assert.ErrorIs(t, err, ErrNoData)

	// Records but no recognized feature column.
	_, err = Build(&Dataset{
		Records: []Record{{StudentID: 1}},
		Columns: map[string]bool{ColDestinationCountry: true},
	})
	assert.ErrorIs(t, err, ErrNoFeatures)
}

func TestBuildSelectsPresentColumns(t *testing.T) {
	ds := &Dataset{
		Records: []Record{{GPA: 3.0, TuitionBudget: 20000}, {GPA: 3.5, TuitionBudget: 30000}},
		Columns: map[string]bool{ColGPA: true, ColTuitionBudget: true, ColSatisfaction: true},
	}
	idx, err := Build(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{ColGPA, ColTuitionBudget}, idx.Features())
}

func TestBuildNeighborCountClamped(t *testing.T) {
	idx, err := Build(gpaDataset(3.0, 3.1, 3.2))
	require.NoError(t, err)
	assert.Equal(t, 3, idx.NeighborCount())

	gpas := make([]float64, 25)
	for i := range gpas {
		gpas[i] = 2.0 + float64(i)*0.05
	}
	idx, err = Build(gpaDataset(gpas...))
	require.NoError(t, err)
	assert.Equal(t, 10, idx.NeighborCount())
}

func TestBuildSampleStdDev(t *testing.T) {
	idx, err := Build(gpaDataset(3.0, 4.0))
	require.NoError(t, err)

	require.Len(t, idx.stds, 1)
	assert.InDelta(t, 3.5, idx.means[0], 1e-9)
	// Sample std of {3.0, 4.0} with n-1 in the denominator.
	assert.InDelta(t, math.Sqrt(0.5), idx.stds[0], 1e-9)
	assert.InDelta(t, -1/math.Sqrt(2), idx.matrix[0][0], 1e-9)
	assert.InDelta(t, 1/math.Sqrt(2), idx.matrix[1][0], 1e-9)
}

func TestBuildMeanFillsMissing(t *testing.T) {
	ds := gpaDataset(3.0, 4.0)
	ds.Records = append(ds.Records, Record{StudentID: 3, GPA: math.NaN()})

	idx, err := Build(ds)
	require.NoError(t, err)
	// Mean over present values only; the missing row normalizes to zero.
	assert.InDelta(t, 3.5, idx.means[0], 1e-9)
	assert.InDelta(t, 0.0, idx.matrix[2][0], 1e-9)
}

func TestBuildZeroVarianceColumn(t *testing.T) {
	idx, err := Build(gpaDataset(3.0, 3.0, 3.0))
	require.NoError(t, err)

	for i := range idx.matrix {
		assert.Zero(t, idx.matrix[i][0])
	}
	// Querying a flat column still works and contributes no distance.
	records, err := idx.FindSimilar(Query{GPA: floatPtr(99)}, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFindSimilarOrdering(t *testing.T) {
	idx, err := Build(gpaDataset(2.0, 3.0, 3.9, 4.0))
	require.NoError(t, err)

	records, err := idx.FindSimilar(Query{GPA: floatPtr(3.95)}, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 3, records[0].StudentID)
	assert.Equal(t, 4, records[1].StudentID)
	assert.Equal(t, 2, records[2].StudentID)
}

func TestFindSimilarQueryDefaultsToMean(t *testing.T) {
	ds := &Dataset{
		Records: []Record{
			{StudentID: 1, GPA: 2.0, TuitionBudget: 10000},
			{StudentID: 2, GPA: 3.0, TuitionBudget: 30000},
			{StudentID: 3, GPA: 4.0, TuitionBudget: 50000},
		},
		Columns: map[string]bool{ColGPA: true, ColTuitionBudget: true},
	}
	idx, err := Build(ds)
	require.NoError(t, err)

	// Only GPA specified; the tuition axis falls back to the mean and the
	// middle record wins on GPA alone.
	records, err := idx.FindSimilar(Query{GPA: floatPtr(3.0)}, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].StudentID)
}

func TestFindSimilarArgumentChecks(t *testing.T) {
	var nilIdx *Index
	_, err := nilIdx.FindSimilar(Query{}, 3)
	assert.ErrorIs(t, err, ErrNotBuilt)

	idx, err := Build(gpaDataset(3.0, 3.5))
	require.NoError(t, err)

	_, err = idx.FindSimilar(Query{}, 0)
	assert.Error(t, err)

	// n beyond the build-time cap is clamped, not rejected.
	records, err := idx.FindSimilar(Query{}, 50)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStorePublish(t *testing.T) {
	store := NewStore()
	assert.Nil(t, store.Current())
	assert.EqualValues(t, 0, store.Version())

	idx, err := Build(gpaDataset(3.0, 3.5))
	require.NoError(t, err)

	store.Publish(idx)
	assert.Same(t, idx, store.Current())
	assert.EqualValues(t, 1, store.Version())

	rebuilt, err := Build(gpaDataset(2.0, 2.5, 3.0))
	require.NoError(t, err)
	store.Publish(rebuilt)
	assert.Same(t, rebuilt, store.Current())
	assert.EqualValues(t, 2, store.Version())
}
