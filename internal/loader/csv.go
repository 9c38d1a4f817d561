package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/dataprof-cli/internal/dataset"
)

// LoadCSV reads a CSV or TSV file into a Table. The first record is the
// header; short records are padded with nulls so every column keeps equal
// length.
func LoadCSV(path string, opt Options) (*dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &dataset.Table{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	ncol := len(header)
	cols := make([]dataset.Column, ncol)
	for i, h := range header {
		cols[i] = dataset.Column{Name: strings.TrimSpace(h)}
	}

	nulls := nullSet(opt)
	rows := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", rows+1, err)
		}
		if opt.MaxRows > 0 && rows >= opt.MaxRows {
			break
		}
		rows++
		for j := 0; j < ncol; j++ {
			if j < len(rec) {
				cols[j].Values = append(cols[j].Values, cellValue(rec[j], nulls))
			} else {
				cols[j].Values = append(cols[j].Values, dataset.Null())
			}
		}
	}
	return &dataset.Table{Columns: cols}, nil
}

// sniffDelimiter picks a delimiter from the filename.
func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(filepath.Base(path)), ".tsv") {
		return '\t'
	}
	return ','
}
