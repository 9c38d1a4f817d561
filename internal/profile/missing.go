package profile

import "github.com/KaramelBytes/dataprof-cli/internal/dataset"

// missingness counts null cells. The percentage is reported as an explicit
// zero when the table has no rows.
func missingness(col dataset.Column, rows int) (count int, pct float64) {
	for _, v := range col.Values {
		if v.Null {
			count++
		}
	}
	if rows > 0 {
		pct = float64(count) / float64(rows) * 100
	}
	return count, pct
}
