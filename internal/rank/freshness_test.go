package rank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PremDutta/pm-job-hub/internal/domain"
)

func TestFreshnessOf(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	day := func(d int) string { return now.AddDate(0, 0, -d).Format("2006-01-02") }

	tests := []struct {
		name     string
		posted   string
		bucket   string
		label    string
		isNew    bool
		isUrgent bool
	}{
		{name: "today", posted: day(0), bucket: domain.FreshnessToday, label: "Posted today", isNew: true, isUrgent: true},
		{name: "yesterday", posted: day(1), bucket: domain.FreshnessYesterday, label: "Yesterday", isNew: true, isUrgent: true},
		{name: "two days", posted: day(2), bucket: domain.FreshnessThisWeek, label: "2 days ago", isNew: true},
		{name: "three days", posted: day(3), bucket: domain.FreshnessThisWeek, label: "3 days ago", isNew: true},
		{name: "five days", posted: day(5), bucket: domain.FreshnessThisWeek, label: "5 days ago"},
		{name: "ten days", posted: day(10), bucket: domain.FreshnessLastTwoWeeks, label: "10 days ago"},
		{name: "three weeks", posted: day(21), bucket: domain.FreshnessThisMonth, label: "3 weeks ago"},
		{name: "two months", posted: day(65), bucket: domain.FreshnessOlder, label: "2+ months ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FreshnessOf(tt.posted, now, now)
			assert.Equal(t, tt.bucket, f.Bucket)
			assert.Equal(t, tt.label, f.Label)
			assert.Equal(t, tt.isNew, f.IsNew)
			assert.Equal(t, tt.isUrgent, f.IsUrgent)
		})
	}
}

func TestFreshnessFallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -10)

	f := FreshnessOf("", created, now)
	assert.Equal(t, domain.FreshnessLastTwoWeeks, f.Bucket)
	assert.Equal(t, 10, f.DaysAgo)

	f = FreshnessOf("not-a-date", created, now)
	assert.Equal(t, domain.FreshnessLastTwoWeeks, f.Bucket)
}
