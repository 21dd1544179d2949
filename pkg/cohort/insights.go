package cohort

import "math"

// satisfactionFactors are the rating columns considered when correlating
// against decision satisfaction.
var satisfactionFactors = []string{
	ColRankingImportance,
	ColCostSensitivity,
	ColSafetyImportance,
	ColCareerImportance,
	ColConfidenceLevel,
	ColRiskTolerance,
}

// SatisfactionCorrelations computes the Pearson correlation of each
// importance factor against the decision-satisfaction score. Factors or
// the satisfaction column missing from the dataset yield an empty map.
func SatisfactionCorrelations(ds *Dataset) map[string]float64 {
	if ds == nil || len(ds.Records) == 0 || !ds.Columns[ColSatisfaction] {
		return map[string]float64{}
	}

	correlations := make(map[string]float64)
	for _, factor := range satisfactionFactors {
		if !ds.Columns[factor] {
			continue
		}
		if corr, ok := pearson(ds.Records, factor); ok {
			correlations[factor] = corr
		}
	}
	return correlations
}

// pearson correlates a factor column with satisfaction over rows where
// both values are present.
func pearson(records []Record, factor string) (float64, bool) {
	var xs, ys []float64
	for _, r := range records {
		x := r.feature(factor)
		y := r.Satisfaction
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) < 2 {
		return 0, false
	}

	meanX, meanY := mean(xs), mean(ys)
	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}

// PopularityBoost returns a small additive boost based on how often the
// given destination country (up to 0.03) and field of study (up to 0.02)
// appear across the whole dataset.
func PopularityBoost(ds *Dataset, country, field string) float64 {
	if ds == nil || len(ds.Records) == 0 {
		return 0
	}

	boost := 0.0
	if country != "" {
		matched, total := 0, 0
		for _, r := range ds.Records {
			if r.DestinationCountry == "" {
				continue
			}
			total++
			if r.DestinationCountry == country {
				matched++
			}
		}
		if total > 0 {
			boost += float64(matched) / float64(total) * 0.03
		}
	}
	if field != "" {
		matched, total := 0, 0
		for _, r := range ds.Records {
			if r.FieldOfStudy == "" {
				continue
			}
			total++
			if r.FieldOfStudy == field {
				matched++
			}
		}
		if total > 0 {
			boost += float64(matched) / float64(total) * 0.02
		}
	}
	return boost
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
