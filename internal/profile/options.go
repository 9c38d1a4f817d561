package profile

import (
	"time"

	"github.com/google/uuid"
)

// Options controls profiling behavior.
type Options struct {
	// CategoricalRatio is the max distinct/row ratio for a column to be
	// classified categorical rather than text.
	CategoricalRatio float64
	// CategoricalCap classifies a column as categorical when the table has
	// more rows than the cap and the distinct count is at or below it.
	CategoricalCap int
	// HighCardinalityRatio flags a column when distinct/rows exceeds it.
	HighCardinalityRatio float64
	// HighCardinalityMinRows suppresses the flag on tiny datasets.
	HighCardinalityMinRows int
	// SampleSize is how many leading non-null values to record per column.
	SampleSize int
	// AnomalyRatio is the fraction of sampled values that must parse as
	// numeric for a non-numeric column to be flagged.
	AnomalyRatio float64
	// OutlierFactor scales the IQR when building the outlier fence.
	OutlierFactor float64
	// DateFormats are the accepted datetime layouts, tried in order.
	DateFormats []string

	// Now and NewID supply the profile timestamp and identifier. They
	// exist so callers can pin them; profiling is otherwise a pure
	// function of the table and options.
	Now   func() time.Time
	NewID func() string
}

// DefaultOptions returns the documented engine defaults.
func DefaultOptions() Options {
	return Options{
		CategoricalRatio:       0.5,
		CategoricalCap:         20,
		HighCardinalityRatio:   0.9,
		HighCardinalityMinRows: 20,
		SampleSize:             10,
		AnomalyRatio:           0.8,
		OutlierFactor:          1.5,
		DateFormats:            DefaultDateFormats(),
		Now:                    time.Now,
		NewID:                  uuid.NewString,
	}
}

// DefaultDateFormats returns the fixed set of accepted datetime layouts.
func DefaultDateFormats() []string {
	return []string{
		time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
		"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
	}
}
