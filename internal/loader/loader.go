// Package loader reads tabular files (CSV/TSV, XLSX, Parquet) into the
// dataset.Table consumed by the profiling engine. Loaders normalize the
// source's absent-value conventions into the explicit null marker: empty
// cells and the configured null tokens all become dataset.Null().
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/dataprof-cli/internal/dataset"
)

// ErrUnsupportedFormat is returned for file extensions no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format (use csv, tsv, xlsx, or parquet)")

// Options controls loading behavior.
type Options struct {
	// Delimiter for CSV. If 0, sniffed from the file extension.
	Delimiter rune
	// SheetName selects an XLSX sheet by name; SheetIndex (1-based) is the
	// fallback when SheetName is empty.
	SheetName  string
	SheetIndex int
	// MaxRows limits data rows read; 0 means unlimited.
	MaxRows int
	// NullMarkers are cell values (case-insensitive) treated as null in
	// addition to the empty string.
	NullMarkers []string
}

// DefaultOptions returns reasonable defaults for dataset loading.
func DefaultOptions() Options {
	return Options{
		SheetIndex:  1,
		NullMarkers: []string{"na", "n/a", "nan", "null", "none"},
	}
}

// Load reads path into a Table, dispatching on the file extension.
func Load(path string, opt Options) (*dataset.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return LoadCSV(path, opt)
	case ".xlsx":
		return LoadXLSX(path, opt)
	case ".parquet":
		return LoadParquet(path, opt)
	default:
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
}

// nullSet builds the lookup used by cellValue.
func nullSet(opt Options) map[string]struct{} {
	set := make(map[string]struct{}, len(opt.NullMarkers))
	for _, m := range opt.NullMarkers {
		set[strings.ToLower(m)] = struct{}{}
	}
	return set
}

// cellValue normalizes one raw cell into a Value.
func cellValue(raw string, nulls map[string]struct{}) dataset.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return dataset.Null()
	}
	if _, ok := nulls[strings.ToLower(trimmed)]; ok {
		return dataset.Null()
	}
	return dataset.String(trimmed)
}
