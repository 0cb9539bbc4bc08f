package rank

import (
	"fmt"
	"time"

	"github.com/PremDutta/pm-job-hub/internal/domain"
)

// FreshnessOf buckets a job's age. postedDate is the normalized
// YYYY-MM-DD string; when absent or unparseable the record's creation
// time is used instead.
func FreshnessOf(postedDate string, createdAt, now time.Time) domain.Freshness {
	ref := createdAt
	if postedDate != "" {
		if t, err := time.Parse("2006-01-02", postedDate); err == nil {
			ref = t
		}
	}

	days := daysBetween(ref, now)

	f := domain.Freshness{DaysAgo: days}
	switch {
	case days <= 0:
		f.Bucket = domain.FreshnessToday
		f.Label = "Posted today"
		f.IsNew = true
		f.IsUrgent = true
	case days == 1:
		f.Bucket = domain.FreshnessYesterday
		f.Label = "Yesterday"
		f.IsNew = true
		f.IsUrgent = true
	case days <= 3:
		f.Bucket = domain.FreshnessThisWeek
		f.Label = fmt.Sprintf("%d days ago", days)
		f.IsNew = true
	case days <= 7:
		f.Bucket = domain.FreshnessThisWeek
		f.Label = fmt.Sprintf("%d days ago", days)
	case days <= 14:
		f.Bucket = domain.FreshnessLastTwoWeeks
		f.Label = fmt.Sprintf("%d days ago", days)
	case days <= 30:
		f.Bucket = domain.FreshnessThisMonth
		f.Label = fmt.Sprintf("%d weeks ago", days/7)
	default:
		f.Bucket = domain.FreshnessOlder
		f.Label = fmt.Sprintf("%d+ months ago", days/30)
	}
	return f
}
