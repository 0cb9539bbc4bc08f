package domain

// Freshness buckets derived from posting age.
const (
	FreshnessToday        = "today"
	FreshnessYesterday    = "yesterday"
	FreshnessThisWeek     = "this_week"
	FreshnessLastTwoWeeks = "last_two_weeks"
	FreshnessThisMonth    = "this_month"
	FreshnessOlder        = "older"
)

// Freshness is the derived age classification attached to a job at read time.
type Freshness struct {
	Bucket   string `json:"bucket"`
	Label    string `json:"label"`
	DaysAgo  int    `json:"days_ago"`
	IsNew    bool   `json:"is_new"`
	IsUrgent bool   `json:"is_urgent"`
}
