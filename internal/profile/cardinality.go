package profile

import "github.com/KaramelBytes/dataprof-cli/internal/dataset"

// cardinality counts distinct non-null values and flags high-cardinality
// columns. The flag requires both a distinct/row ratio above the threshold
// and a minimum row count, so tiny datasets are never flagged.
func cardinality(col dataset.Column, rows int, opt Options) (distinct int, high bool) {
	seen := make(map[string]struct{})
	for _, v := range col.Values {
		if v.Null {
			continue
		}
		seen[v.Raw] = struct{}{}
	}
	distinct = len(seen)
	if rows >= opt.HighCardinalityMinRows && rows > 0 {
		high = float64(distinct)/float64(rows) > opt.HighCardinalityRatio
	}
	return distinct, high
}
