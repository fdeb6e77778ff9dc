// Package coerce converts raw CSV strings to typed values of target
// columns.
//
// Coercion never fails with an error. Values that cannot be converted
// become nil, except booleans which are false unless the raw value is
// "true" or "1".
package coerce

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/velocitia/prospectsdata/pkg/schema"
)

var (
	isoDate   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dayFirst  = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	yearFirst = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)
	decimal   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// Value converts a raw string according to the column type. The result
// is nil, float64, bool or string.
func Value(raw string, col schema.Column) any {
	switch col.Type {
	case schema.Number:
		if f, ok := Number(raw); ok {
			return f
		}
		return nil
	case schema.Boolean:
		return Bool(raw)
	case schema.Date:
		if d, ok := Date(raw); ok {
			return d
		}
		return nil
	default:
		if raw == "" {
			return nil
		}
		return raw
	}
}

// Number parses a decimal floating point number. Thousands separators
// are ignored. Empty, non-decimal and non-finite values are rejected, so
// hex literals and underscore digit groups are not numbers.
func Number(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if !decimal.MatchString(s) {
		return 0, false
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Bool is true only for "true" (any case) and "1".
func Bool(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	return s == "true" || s == "1"
}

// Date normalizes a date to YYYY-MM-DD.
//
// Ambiguous D-M-YYYY and D/M/YYYY values are always read day first.
// YYYY/M/D is accepted as well. Anything else goes through a generic
// parser and only the date part is kept. Dates that do not exist on the
// calendar, such as 31/02/2020, are rejected.
func Date(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if isoDate.MatchString(s) {
		return calendar(s)
	}

	if m := dayFirst.FindStringSubmatch(s); m != nil {
		return calendar(m[3] + "-" + pad(m[2]) + "-" + pad(m[1]))
	}

	if m := yearFirst.FindStringSubmatch(s); m != nil {
		return calendar(m[1] + "-" + pad(m[2]) + "-" + pad(m[3]))
	}

	t, err := cast.ToTimeE(s)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(time.DateOnly), true
}

// calendar keeps a YYYY-MM-DD string only if it names a real day.
func calendar(s string) (string, bool) {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", false
	}
	return s, true
}

func pad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
