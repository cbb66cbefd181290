package importer

import (
	"fmt"
	"strings"
)

// Alias sets for the five logical columns. Matching is an exact match on the
// normalized header, not a substring search.
var (
	dateAliases   = []string{"date", "day", "period"}
	actualAliases = []string{"actual", "actual value", "actuals"}
	actualCumAliases = []string{
		"actual cumulative",
		"actual cum",
		"actual cumulative value",
	}
	planAliases = []string{"plan", "planned", "plan value"}
	planCumAliases = []string{
		"plan cumulative",
		"planned cumulative",
		"plan cum",
		"planned cum",
	}
)

// normalizeHeader lowercases a header cell and collapses every run of
// non-alphanumeric characters to a single space, so "Actual_Cumulative " and
// "actual cum." both resolve against the alias sets.
func normalizeHeader(v any) string {
	var s string
	if v != nil {
		s = strings.ToLower(fmt.Sprint(v))
	}
	var b strings.Builder
	space := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}
	return b.String()
}

// findColumn returns the index of the first header matching one of the
// aliases, or -1.
func findColumn(headers []string, aliases []string) int {
	for i, h := range headers {
		for _, a := range aliases {
			if h == a {
				return i
			}
		}
	}
	return -1
}
