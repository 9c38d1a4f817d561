// Package report renders a DatasetProfile as a compact human-readable
// document. PDF/HTML rendering is left to downstream consumers.
package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/dataprof-cli/internal/profile"
)

// Markdown renders a compact quality report suitable for terminals or
// standalone docs.
func Markdown(p *profile.DatasetProfile, name string) string {
	var b strings.Builder
	b.WriteString("[DATA QUALITY REPORT]\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", name))
	}
	if p.ID != "" {
		b.WriteString(fmt.Sprintf("Profile: %s\n", p.ID))
	}
	if p.GeneratedAt != "" {
		b.WriteString(fmt.Sprintf("Generated: %s\n", p.GeneratedAt))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", p.RowCount))
	b.WriteString(fmt.Sprintf("Columns: %d\n", p.ColumnCount))
	dupPct := 0.0
	if p.RowCount > 0 {
		dupPct = float64(p.DuplicateRows) * 100 / float64(p.RowCount)
	}
	b.WriteString(fmt.Sprintf("Duplicate rows: %d (%.1f%%)\n", p.DuplicateRows, dupPct))

	totalMissing := 0
	withMissing := 0
	for _, c := range p.Columns {
		totalMissing += c.MissingCount
		if c.MissingCount > 0 {
			withMissing++
		}
	}
	b.WriteString(fmt.Sprintf("Total missing: %d (in %d columns)\n", totalMissing, withMissing))

	b.WriteString("\n[COLUMNS]\n")
	for _, c := range p.Columns {
		b.WriteString(fmt.Sprintf("- %s: %s (missing %.1f%%, distinct %d)", safeName(c.Name), c.Type, c.MissingPct, c.DistinctCount))
		if c.HighCardinality {
			b.WriteString("; high cardinality")
		}
		if c.Stats != nil {
			s := c.Stats
			b.WriteString(fmt.Sprintf("; min %.4g, max %.4g, mean %.4g", s.Min, s.Max, s.Mean))
			if s.Std != nil {
				b.WriteString(fmt.Sprintf(", std %.4g", *s.Std))
			}
			if s.Skewness != nil {
				b.WriteString(fmt.Sprintf(", skew %.4g", *s.Skewness))
			}
			if s.Kurtosis != nil {
				b.WriteString(fmt.Sprintf(", kurtosis %.4g", *s.Kurtosis))
			}
			if c.OutlierCount > 0 {
				b.WriteString(fmt.Sprintf("; outliers: %d", c.OutlierCount))
			}
			if c.LeadingZeros {
				b.WriteString("; leading zeros (possible identifier)")
			}
		}
		if c.NumericAsString {
			b.WriteString("; possible numeric stored as string")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n[SAMPLE VALUES]\n")
	for _, c := range p.Columns {
		if len(c.SampleValues) == 0 {
			b.WriteString(fmt.Sprintf("- %s: <no non-null values>\n", safeName(c.Name)))
			continue
		}
		vals := make([]string, len(c.SampleValues))
		for i, v := range c.SampleValues {
			vals[i] = safeVal(v)
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", safeName(c.Name), strings.Join(vals, " | ")))
	}

	if len(p.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range p.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string {
	s = strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
	if len(s) > 80 {
		s = s[:77] + "..."
	}
	return s
}
