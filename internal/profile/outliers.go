package profile

import (
	"math"
	"sort"

	"github.com/KaramelBytes/dataprof-cli/internal/dataset"
)

// detectOutliers flags values outside [Q1 - f*IQR, Q3 + f*IQR] for a
// numeric column, nulls excluded. Indices refer to original row positions.
// A zero IQR gives a degenerate fence, so nothing is flagged.
func detectOutliers(col dataset.Column, opt Options) (count int, indices []int) {
	vals := make([]float64, 0, len(col.Values))
	rows := make([]int, 0, len(col.Values))
	for i, v := range col.Values {
		if v.Null {
			continue
		}
		x, ok := parseNumber(v.Raw)
		if !ok {
			continue
		}
		vals = append(vals, x)
		rows = append(rows, i)
	}
	if len(vals) == 0 {
		return 0, nil
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	if iqr == 0 {
		return 0, nil
	}
	lower := q1 - opt.OutlierFactor*iqr
	upper := q3 + opt.OutlierFactor*iqr

	for i, x := range vals {
		if x < lower || x > upper {
			count++
			indices = append(indices, rows[i])
		}
	}
	return count, indices
}

// quantile interpolates linearly between the two nearest ranks of a sorted
// slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
