// Package scrape orchestrates runs: fan-out over board adapters,
// normalization, dedup, scoring, and persistence.
package scrape

import (
	"strings"

	"github.com/PremDutta/pm-job-hub/internal/scrape/fetch"
	"github.com/PremDutta/pm-job-hub/internal/scrape/foundit"
	"github.com/PremDutta/pm-job-hub/internal/scrape/indeed"
	"github.com/PremDutta/pm-job-hub/internal/scrape/internshala"
	"github.com/PremDutta/pm-job-hub/internal/scrape/linkedin"
	"github.com/PremDutta/pm-job-hub/internal/scrape/naukri"
	"github.com/PremDutta/pm-job-hub/internal/scrape/timesjobs"
	"github.com/PremDutta/pm-job-hub/internal/scrape/types"
)

// defaultSources is the expansion of the "all" source selector, in the
// order runs visit them.
var defaultSources = []string{"linkedin", "naukri", "indeed", "foundit", "timesjobs", "internshala"}

// BuildAdapters resolves configured source names into adapters. Unknown
// names are skipped so a stale config cannot kill a run.
func BuildAdapters(names []string, fc *fetch.Client) []types.SourceAdapter {
	resolved := names
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), "all") {
			resolved = defaultSources
			break
		}
	}

	var out []types.SourceAdapter
	seen := map[string]bool{}
	for _, n := range resolved {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true

		switch n {
		case "linkedin":
			out = append(out, linkedin.New(fc))
		case "naukri":
			out = append(out, naukri.New(fc))
		case "indeed":
			out = append(out, indeed.New(fc))
		case "foundit":
			out = append(out, foundit.New(fc))
		case "timesjobs":
			out = append(out, timesjobs.New(fc))
		case "internshala":
			out = append(out, internshala.New(fc))
		}
	}
	return out
}
