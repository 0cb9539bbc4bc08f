package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reExpRange = regexp.MustCompile(`(\d+)\s*(?:-|–|to)\s*(\d+)`)
	// A lone number only counts with a year marker, so a stray "2024"
	// or headcount never becomes an experience range.
	reExpSingle = regexp.MustCompile(`(\d+)\s*(?:year|yr|yrs|\+)`)
)

// openEndedPadding widens "N+ years" into a (N, N+3) range so
// open-ended postings stay comparable with explicit ranges.
const openEndedPadding = 3

// ParseExperience extracts a years-of-experience range. No match
// yields (0, 0, "").
func ParseExperience(raw string) (min, max int, display string) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, 0, ""
	}

	if m := reExpRange.FindStringSubmatch(raw); m != nil {
		min, _ = strconv.Atoi(m[1])
		max, _ = strconv.Atoi(m[2])
		if min > max {
			min, max = max, min
		}
		return min, max, fmt.Sprintf("%d-%d yrs", min, max)
	}

	if m := reExpSingle.FindStringSubmatch(raw); m != nil {
		min, _ = strconv.Atoi(m[1])
		return min, min + openEndedPadding, fmt.Sprintf("%d+ yrs", min)
	}

	return 0, 0, ""
}
