package rank

import (
	"strings"

	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/domain"
)

// TierTable classifies companies into reputation tiers. The lists are
// injected configuration so reclassifying a company never touches code.
type TierTable struct {
	Cfg config.Companies
}

// TierFor looks up company's tier: exact/substring match against the
// configured lists, then a keyword fallback that treats obvious tech
// startup naming as mid tier.
func (t TierTable) TierFor(company string) string {
	name := strings.ToLower(strings.TrimSpace(company))
	if name == "" {
		return domain.TierUnknown
	}

	for _, c := range t.Cfg.Top {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if strings.Contains(name, c) || strings.Contains(c, name) {
			return domain.TierTop
		}
	}
	for _, c := range t.Cfg.Mid {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if strings.Contains(name, c) || strings.Contains(c, name) {
			return domain.TierMid
		}
	}

	for _, hint := range t.Cfg.StartupHints {
		hint = strings.ToLower(strings.TrimSpace(hint))
		if hint == "" {
			continue
		}
		for _, word := range strings.Fields(name) {
			if word == hint {
				return domain.TierMid
			}
		}
	}

	return domain.TierUnknown
}
