package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const dateLayout = "2006-01-02"

var (
	reDaysAgo   = regexp.MustCompile(`(\d+)\s*day`)
	reWeeksAgo  = regexp.MustCompile(`(\d+)\s*week`)
	reMonthsAgo = regexp.MustCompile(`(\d+)\s*month`)
)

// ParseDate maps a relative posted-date phrase to an absolute calendar
// date. It never fails: anything unparseable is "today".
func ParseDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(dateLayout)
	}
	lower := strings.ToLower(raw)

	for _, tok := range []string{"just now", "today", "hour", "minute", "moment", "second"} {
		if strings.Contains(lower, tok) {
			return now.Format(dateLayout)
		}
	}
	if strings.Contains(lower, "yesterday") {
		return now.AddDate(0, 0, -1).Format(dateLayout)
	}

	if m := reDaysAgo.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -n).Format(dateLayout)
	}
	if m := reWeeksAgo.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -7*n).Format(dateLayout)
	}
	if m := reMonthsAgo.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -30*n).Format(dateLayout)
	}

	// Absolute timestamps (ISO-8601 and whatever else boards emit).
	// Parsed as-is: RFC 3339 markers are case-sensitive.
	if t, err := dateparse.ParseAny(raw); err == nil {
		return t.Format(dateLayout)
	}

	return now.Format(dateLayout)
}
