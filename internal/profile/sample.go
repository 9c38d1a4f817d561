package profile

import "github.com/KaramelBytes/dataprof-cli/internal/dataset"

// sampleValues takes the first n non-null values in original order.
// Deterministic by construction; no random sampling.
func sampleValues(col dataset.Column, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for _, v := range col.Values {
		if v.Null {
			continue
		}
		out = append(out, v.Raw)
		if len(out) == n {
			break
		}
	}
	return out
}

// numericAsString reports whether at least ratio of the sampled values of a
// non-numeric column parse as numbers, suggesting numeric data stored as
// strings.
func numericAsString(sample []string, ratio float64) bool {
	if len(sample) == 0 {
		return false
	}
	numeric := 0
	for _, s := range sample {
		if _, ok := parseNumber(s); ok {
			numeric++
		}
	}
	return float64(numeric)/float64(len(sample)) >= ratio
}
