package rank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PremDutta/pm-job-hub/internal/domain"
)

func TestScore(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		job  domain.Job
		want int
	}{
		{
			name: "base only",
			job:  domain.Job{},
			want: 50,
		},
		{
			name: "salary bonus",
			job:  domain.Job{SalaryMax: 30},
			want: 60,
		},
		{
			name: "fresh posting",
			job:  domain.Job{PostedDate: "2025-06-14"},
			want: 65,
		},
		{
			name: "week old posting",
			job:  domain.Job{PostedDate: "2025-06-09"},
			want: 60,
		},
		{
			name: "two week old posting",
			job:  domain.Job{PostedDate: "2025-06-03"},
			want: 55,
		},
		{
			name: "stale posting no bonus",
			job:  domain.Job{PostedDate: "2025-05-01"},
			want: 50,
		},
		{
			name: "rich skills",
			job:  domain.Job{Skills: []string{"sql", "agile", "jira", "okr", "roadmap"}},
			want: 60,
		},
		{
			name: "some skills",
			job:  domain.Job{Skills: []string{"sql", "agile", "jira"}},
			want: 55,
		},
		{
			name: "top tier",
			job:  domain.Job{CompanyTier: domain.TierTop},
			want: 60,
		},
		{
			name: "all bonuses stack",
			job: domain.Job{
				SalaryMax:   40,
				PostedDate:  "2025-06-15",
				Skills:      []string{"a", "b", "c", "d", "e", "f"},
				CompanyTier: domain.TierTop,
			},
			want: 95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.job, now))
		})
	}
}

func TestScoreBounds(t *testing.T) {
	now := time.Now().UTC()
	j := domain.Job{
		SalaryMax:   50,
		PostedDate:  now.Format("2006-01-02"),
		Skills:      []string{"a", "b", "c", "d", "e"},
		CompanyTier: domain.TierTop,
	}
	got := Score(j, now)
	assert.LessOrEqual(t, got, 100)
	assert.GreaterOrEqual(t, got, 0)
}
