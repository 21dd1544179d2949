package cohort

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// featureColumns is the fixed feature set used for similarity matching,
// restricted at build time to columns the dataset actually carries.
var featureColumns = []string{
	ColGPA,
	ColTuitionBudget,
	ColLivingBudget,
	ColRankingImportance,
	ColCostSensitivity,
	ColCareerImportance,
}

// maxNeighbors caps the neighbor count used at build time.
const maxNeighbors = 10

// Errors reported when the index cannot be built or queried.
var (
	ErrNoData     = errors.New("cohort: no historical records")
	ErrNoFeatures = errors.New("cohort: no usable feature columns")
	ErrNotBuilt   = errors.New("cohort: index not built")
)

// Query is a preference vector for similarity lookup. Nil fields fall
// back to the column mean, the neutral value under z-score normalization.
type Query struct {
	GPA               *float64
	TuitionBudget     *float64
	LivingBudget      *float64
	RankingImportance *float64
	CostSensitivity   *float64
	CareerImportance  *float64
}

func (q Query) value(column string) *float64 {
	switch column {
	case ColGPA:
		return q.GPA
	case ColTuitionBudget:
		return q.TuitionBudget
	case ColLivingBudget:
		return q.LivingBudget
	case ColRankingImportance:
		return q.RankingImportance
	case ColCostSensitivity:
		return q.CostSensitivity
	case ColCareerImportance:
		return q.CareerImportance
	default:
		return nil
	}
}

// Index is a nearest-neighbor structure over z-score-normalized history
// features. It is immutable after Build returns.
type Index struct {
	records  []Record
	features []string
	means    []float64
	stds     []float64
	matrix   [][]float64
	k        int
}

// Build constructs the index from the dataset: select the feature columns
// present in the data, fill missing values with the column mean, z-score
// normalize column-wise, and keep the normalized matrix for brute-force
// Euclidean lookup. Build either succeeds completely or returns an error
// leaving no partial state behind.
func Build(ds *Dataset) (*Index, error) {
	if ds == nil || len(ds.Records) == 0 {
		return nil, ErrNoData
	}

	var features []string
	for _, col := range featureColumns {
		if ds.Columns[col] {
			features = append(features, col)
		}
	}
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}

	n := len(ds.Records)
	idx := &Index{
		records:  append([]Record(nil), ds.Records...),
		features: features,
		means:    make([]float64, len(features)),
		stds:     make([]float64, len(features)),
		matrix:   make([][]float64, n),
		k:        min(maxNeighbors, n),
	}
	for i := range idx.matrix {
		idx.matrix[i] = make([]float64, len(features))
	}

	for j, col := range features {
		// Column mean over present values doubles as the fill for
		// missing ones.
		sum, count := 0.0, 0
		for _, r := range ds.Records {
			if v := r.feature(col); !math.IsNaN(v) {
				sum += v
				count++
			}
		}
		mean := 0.0
		if count > 0 {
			mean = sum / float64(count)
		}
		idx.means[j] = mean

		// Sample standard deviation after mean-filling.
		variance := 0.0
		for _, r := range ds.Records {
			v := r.feature(col)
			if math.IsNaN(v) {
				v = mean
			}
			variance += (v - mean) * (v - mean)
		}
		std := 0.0
		if n > 1 {
			std = math.Sqrt(variance / float64(n-1))
		}
		idx.stds[j] = std

		for i, r := range ds.Records {
			v := r.feature(col)
			if math.IsNaN(v) {
				v = mean
			}
			idx.matrix[i][j] = normalize(v, mean, std)
		}
	}

	return idx, nil
}

// normalize z-scores a value. A zero-variance column maps everything to
// zero so it contributes no distance.
func normalize(v, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return (v - mean) / std
}

// NeighborCount returns the neighbor count fixed at build time.
func (idx *Index) NeighborCount() int {
	return idx.k
}

// Features returns the feature columns the index was built over.
func (idx *Index) Features() []string {
	return append([]string(nil), idx.features...)
}

// FindSimilar returns the n historical records nearest to the query by
// Euclidean distance over the normalized features. Unspecified query
// fields use the column mean. n is clamped to the build-time neighbor
// count.
func (idx *Index) FindSimilar(q Query, n int) ([]Record, error) {
	if idx == nil || len(idx.matrix) == 0 {
		return nil, ErrNotBuilt
	}
	if n <= 0 {
		return nil, fmt.Errorf("cohort: neighbor count must be positive, got %d", n)
	}
	if n > idx.k {
		n = idx.k
	}

	query := make([]float64, len(idx.features))
	for j, col := range idx.features {
		v := idx.means[j]
		if qv := q.value(col); qv != nil {
			v = *qv
		}
		query[j] = normalize(v, idx.means[j], idx.stds[j])
	}

	type neighbor struct {
		row      int
		distance float64
	}
	neighbors := make([]neighbor, len(idx.matrix))
	for i, row := range idx.matrix {
		sum := 0.0
		for j := range row {
			d := row[j] - query[j]
			sum += d * d
		}
		neighbors[i] = neighbor{row: i, distance: math.Sqrt(sum)}
	}

	sort.SliceStable(neighbors, func(a, b int) bool {
		return neighbors[a].distance < neighbors[b].distance
	})

	result := make([]Record, 0, n)
	for _, nb := range neighbors[:n] {
		result = append(result, idx.records[nb.row])
	}
	return result, nil
}
