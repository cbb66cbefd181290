package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/khairul247/s-curve/pkg/scurve/calc"
)

// parseNumber coerces a cell to a float. Strings are stripped of everything
// except digits, '.', '+' and '-' first, so "1,234 pcs" reads as 1234.
// Empty, non-numeric and non-finite cells coerce to zero.
func parseNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		return 0
	}

	var b strings.Builder
	for _, r := range strings.TrimSpace(toString(v)) {
		if (r >= '0' && r <= '9') || r == '.' || r == '+' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseDateCell coerces a cell to canonical "YYYY-MM-DD" form. Native time
// values, spreadsheet serial-date numbers, ISO strings and a few common
// free-form layouts are accepted; anything else reports ok=false so the
// caller can drop the row.
func parseDateCell(v any) (string, bool) {
	switch d := v.(type) {
	case nil:
		return "", false
	case time.Time:
		if d.IsZero() {
			return "", false
		}
		return calc.FormatDate(d), true
	case float64:
		return serialToDate(d)
	case int:
		return serialToDate(float64(d))
	case int64:
		return serialToDate(float64(d))
	}

	s := strings.TrimSpace(toString(v))
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return calc.FormatDate(t), true
		}
	}
	// Raw workbook reads surface serial dates as numeric strings.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return serialToDate(serial)
	}
	return "", false
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

func serialToDate(serial float64) (string, bool) {
	if serial < 1 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return calc.FormatDate(t), true
}

func trimString(v any) string {
	return strings.TrimSpace(toString(v))
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(v)
	}
}
