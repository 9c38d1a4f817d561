package profile

import (
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/dataprof-cli/internal/dataset"
)

// parseNumber reports whether s parses as an integer or float.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// hasLeadingZero reports whether a numeric-looking value starts with a
// redundant zero ("007"). Often an identifier rather than a quantity.
func hasLeadingZero(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}

// parseTimeMaybe tries the accepted layouts in order.
func parseTimeMaybe(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// classify infers the semantic type of one column. Parse attempts run in
// fixed precedence: numeric, then datetime, then categorical, then text.
// A column with no non-null values classifies as text.
func classify(col dataset.Column, rows int, opt Options) ColumnType {
	nonNull := 0
	numeric := 0
	dates := 0
	distinct := make(map[string]struct{})

	for _, v := range col.Values {
		if v.Null {
			continue
		}
		nonNull++
		distinct[v.Raw] = struct{}{}
		if _, ok := parseNumber(v.Raw); ok {
			numeric++
			continue
		}
		if _, ok := parseTimeMaybe(v.Raw, opt.DateFormats); ok {
			dates++
		}
	}

	if nonNull == 0 {
		return TextType
	}
	if numeric == nonNull {
		return NumericType
	}
	if dates == nonNull {
		return DatetimeType
	}
	if rows > 0 && float64(len(distinct))/float64(rows) <= opt.CategoricalRatio {
		return CategoricalType
	}
	// The absolute cap only means anything once the dataset outgrows it;
	// on tiny tables it would shadow the ratio rule.
	if opt.CategoricalCap > 0 && rows > opt.CategoricalCap && len(distinct) <= opt.CategoricalCap {
		return CategoricalType
	}
	return TextType
}
