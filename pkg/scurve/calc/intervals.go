package calc

import (
	"sort"
	"time"

	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// DateLayout is the canonical "YYYY-MM-DD" form used everywhere dates are
// passed as strings.
const DateLayout = "2006-01-02"

// WeekStart fixes the weekly boundary convention to ISO 8601 Monday,
// independent of locale. Month boundaries fall on the 1st. All civil-date
// math runs in UTC.
const WeekStart = time.Monday

// ParseDate parses a canonical "YYYY-MM-DD" date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a time as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Intervals returns the ordered period boundary dates covering
// [startDate, endDate] at the given granularity. The sequence is strictly
// increasing, deduplicated, and always contains both bounds. A start after
// the end, or an unparseable bound, yields an empty sequence.
func Intervals(startDate, endDate string, it types.IntervalType) []string {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil
	}
	if start.After(end) {
		return nil
	}

	var dates []time.Time
	switch it {
	case types.IntervalDaily:
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	case types.IntervalWeekly:
		dates = append(dates, start)
		for d := weekStartOnOrAfter(start); !d.After(end); d = d.AddDate(0, 0, 7) {
			dates = append(dates, d)
		}
	case types.IntervalMonthly:
		dates = append(dates, start)
		for d := monthStartOnOrAfter(start); !d.After(end); d = d.AddDate(0, 1, 0) {
			dates = append(dates, d)
		}
	default:
		return nil
	}

	if FormatDate(dates[len(dates)-1]) != endDate {
		dates = append(dates, end)
	}

	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		s := FormatDate(d)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func weekStartOnOrAfter(t time.Time) time.Time {
	for t.Weekday() != WeekStart {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func monthStartOnOrAfter(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	if first.Before(t) {
		first = first.AddDate(0, 1, 0)
	}
	return first
}
