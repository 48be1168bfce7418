package taskparse

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultEstimateMinutes is returned when no duration reference is found.
const DefaultEstimateMinutes = 60

var estimateNumberRe = regexp.MustCompile(`(\d+)`)

// Duration units in scan order; longer-running units are checked first so
// "2 days" is not read as 2 minutes.
var estimateUnits = []struct {
	keyword string
	minutes int
}{
	{"day", 1440},
	{"hour", 60},
	{"minute", 1},
}

// EstimateMinutes scans text for a duration reference like "2 hours" or
// "45 minutes" and returns the estimate in minutes. Plural forms are covered
// by substring matching on the singular. Defaults to one hour.
func EstimateMinutes(text string) int {
	lower := strings.ToLower(text)

	for _, unit := range estimateUnits {
		if !strings.Contains(lower, unit.keyword) {
			continue
		}
		if m := estimateNumberRe.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n * unit.minutes
			}
		}
	}

	return DefaultEstimateMinutes
}
