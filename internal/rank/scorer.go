// Package rank computes the bounded match score and the freshness
// classification for canonical records.
package rank

import (
	"time"

	"github.com/PremDutta/pm-job-hub/internal/domain"
)

const (
	baseScore = 50

	salaryBonus = 10

	ageBonusFresh  = 15 // <= 3 days
	ageBonusRecent = 10 // <= 7 days
	ageBonusOK     = 5  // <= 14 days

	skillsBonusRich = 10 // >= 5 skills
	skillsBonusSome = 5  // >= 3 skills

	tierBonusTop = 10
	tierBonusMid = 5
)

// Score computes the heuristic match score for a normalized job.
// Result is always within [0, 100].
func Score(j domain.Job, now time.Time) int {
	score := baseScore

	if j.SalaryMax > 0 {
		score += salaryBonus
	}

	if j.PostedDate != "" {
		if posted, err := time.Parse("2006-01-02", j.PostedDate); err == nil {
			switch days := daysBetween(posted, now); {
			case days <= 3:
				score += ageBonusFresh
			case days <= 7:
				score += ageBonusRecent
			case days <= 14:
				score += ageBonusOK
			}
		}
	}

	switch {
	case len(j.Skills) >= 5:
		score += skillsBonusRich
	case len(j.Skills) >= 3:
		score += skillsBonusSome
	}

	switch j.CompanyTier {
	case domain.TierTop:
		score += tierBonusTop
	case domain.TierMid:
		score += tierBonusMid
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func daysBetween(from, to time.Time) int {
	from = from.Truncate(24 * time.Hour)
	to = to.Truncate(24 * time.Hour)
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
