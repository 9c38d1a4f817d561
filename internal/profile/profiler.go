package profile

import (
	"time"

	"github.com/apex/log"

	"github.com/KaramelBytes/dataprof-cli/internal/dataset"
)

// Profile runs every analysis over the table and assembles the result.
// The table is read immutably; the only failure mode is a structurally
// inconsistent table, in which case no partial profile is returned. A
// zero-row table is not an error: the profile carries zeroed statistics
// and a warning instead.
func Profile(t *dataset.Table, opt Options) (*DatasetProfile, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	newID := opt.NewID
	if newID == nil {
		newID = func() string { return "" }
	}

	rows := t.NumRows()
	p := &DatasetProfile{
		ID:          newID(),
		GeneratedAt: now().UTC().Format(time.RFC3339),
		RowCount:    rows,
		ColumnCount: t.NumCols(),
	}
	if rows == 0 {
		p.Warnings = append(p.Warnings, "dataset has no rows; statistics are zeroed")
	}

	p.DuplicateRows, p.DuplicateIndices = duplicateRows(t)
	log.Debugf("checked duplicates: %d duplicate rows", p.DuplicateRows)

	p.Columns = make([]ColumnProfile, 0, t.NumCols())
	for _, col := range t.Columns {
		cp := ColumnProfile{Name: col.Name}
		cp.Type = classify(col, rows, opt)
		cp.MissingCount, cp.MissingPct = missingness(col, rows)
		cp.DistinctCount, cp.HighCardinality = cardinality(col, rows, opt)
		cp.SampleValues = sampleValues(col, opt.SampleSize)

		if cp.Type == NumericType {
			cp.Stats = summarize(col)
			cp.OutlierCount, cp.OutlierIndices = detectOutliers(col, opt)
			for _, s := range cp.SampleValues {
				if hasLeadingZero(s) {
					cp.LeadingZeros = true
					break
				}
			}
		} else {
			cp.NumericAsString = numericAsString(cp.SampleValues, opt.AnomalyRatio)
		}

		log.Debugf("checked column %q: type=%s missing=%d distinct=%d outliers=%d",
			cp.Name, cp.Type, cp.MissingCount, cp.DistinctCount, cp.OutlierCount)
		p.Columns = append(p.Columns, cp)
	}

	log.Debugf("profile complete: %d rows, %d columns", p.RowCount, p.ColumnCount)
	return p, nil
}
