package profile

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/KaramelBytes/dataprof-cli/internal/dataset"
)

// summarize computes descriptive statistics for a numeric column. Std uses
// the sample (n-1) denominator and requires n >= 2; skewness is the
// adjusted Fisher-Pearson estimator (n >= 3); kurtosis is bias-corrected
// excess kurtosis (n >= 4). Estimators that cannot be computed are left
// nil. Returns nil when the column has no non-null numeric values.
func summarize(col dataset.Column) *SummaryStats {
	vals := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		if v.Null {
			continue
		}
		if x, ok := parseNumber(v.Raw); ok {
			vals = append(vals, x)
		}
	}
	if len(vals) == 0 {
		return nil
	}

	mean, _ := stats.Mean(vals)
	minV, _ := stats.Min(vals)
	maxV, _ := stats.Max(vals)
	s := &SummaryStats{
		Count: len(vals),
		Mean:  mean,
		Min:   minV,
		Max:   maxV,
	}
	if len(vals) >= 2 {
		if sd, err := stats.StandardDeviationSample(vals); err == nil {
			s.Std = &sd
		}
	}

	n := float64(len(vals))
	var m2, m3, m4 float64
	for _, x := range vals {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m3 /= n
	m4 /= n

	if len(vals) >= 3 && m2 > 0 {
		g1 := m3 / math.Pow(m2, 1.5)
		skew := g1 * math.Sqrt(n*(n-1)) / (n - 2)
		s.Skewness = &skew
	}
	if len(vals) >= 4 && m2 > 0 {
		kurt := (n - 1) / ((n - 2) * (n - 3)) * ((n+1)*(m4/(m2*m2)) - 3*(n-1))
		s.Kurtosis = &kurt
	}
	return s
}
