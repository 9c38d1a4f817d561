// Package profile implements the dataset quality profiling engine: column
// type classification, missingness, duplicate rows, IQR outliers,
// cardinality, sampled type anomalies, and summary statistics, aggregated
// into a single DatasetProfile.
package profile

import (
	"encoding/json"
	"strings"
)

const (
	UnknownType ColumnType = iota
	NumericType
	DatetimeType
	CategoricalType
	TextType
)

// ColumnType is the inferred semantic type of a column.
type ColumnType uint8

func (v ColumnType) String() string {
	switch v {
	case NumericType:
		return "numeric"
	case DatetimeType:
		return "datetime"
	case CategoricalType:
		return "categorical"
	case TextType:
		return "text"
	}
	return ""
}

func (v ColumnType) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *ColumnType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	var t ColumnType

	switch strings.ToLower(s) {
	case "numeric":
		t = NumericType
	case "datetime":
		t = DatetimeType
	case "categorical":
		t = CategoricalType
	case "text":
		t = TextType
	}

	*v = t

	return nil
}

// SummaryStats holds descriptive statistics for a numeric column. Std,
// Skewness and Kurtosis are nil when the non-null count is too small for
// the estimator (2, 3 and 4 respectively) or the column is constant; they
// are omitted from JSON rather than emitted as NaN.
type SummaryStats struct {
	Count    int      `json:"count"`
	Mean     float64  `json:"mean"`
	Std      *float64 `json:"std,omitempty"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Skewness *float64 `json:"skewness,omitempty"`
	Kurtosis *float64 `json:"kurtosis,omitempty"`
}

// ColumnProfile is the per-column analysis record.
type ColumnProfile struct {
	Name            string        `json:"name"`
	Type            ColumnType    `json:"type"`
	MissingCount    int           `json:"missing_count"`
	MissingPct      float64       `json:"missing_pct"`
	DistinctCount   int           `json:"distinct_count"`
	HighCardinality bool          `json:"high_cardinality"`
	SampleValues    []string      `json:"sample_values,omitempty"`
	NumericAsString bool          `json:"numeric_as_string,omitempty"`
	LeadingZeros    bool          `json:"leading_zeros,omitempty"`
	Stats           *SummaryStats `json:"stats,omitempty"`
	OutlierCount    int           `json:"outlier_count"`
	OutlierIndices  []int         `json:"outlier_indices,omitempty"`
}

// DatasetProfile is the full quality profile of one dataset. It is created
// fresh per Profile call and immutable once returned.
type DatasetProfile struct {
	ID               string          `json:"id"`
	GeneratedAt      string          `json:"generated_at"`
	RowCount         int             `json:"row_count"`
	ColumnCount      int             `json:"column_count"`
	DuplicateRows    int             `json:"duplicate_rows"`
	DuplicateIndices []int           `json:"duplicate_indices,omitempty"`
	Columns          []ColumnProfile `json:"columns"`
	Warnings         []string        `json:"warnings,omitempty"`
}
