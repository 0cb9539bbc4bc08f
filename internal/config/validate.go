package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims/dedupes list fields and sanity-checks the
// tuning knobs. Returns a normalized copy.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Search.Locations = trimList(out.Search.Locations)
	out.Search.Queries = trimList(out.Search.Queries)
	out.Search.Sources = trimList(out.Search.Sources)
	out.Taxonomy.ExcludeTitles = trimList(out.Taxonomy.ExcludeTitles)
	out.Taxonomy.Skills = trimList(out.Taxonomy.Skills)

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if len(out.Search.Locations) == 0 {
		res.addErr("search.locations must have at least 1 entry")
	}
	if len(out.Search.Queries) == 0 {
		res.addErr("search.queries must have at least 1 entry")
	}
	if out.Search.Pages <= 0 {
		res.addErr("search.pages must be > 0")
	} else if out.Search.Pages > 10 {
		res.addWarn("search.pages is high (%d); long runs invite rate limiting.", out.Search.Pages)
	}
	if out.Search.Workers > 16 {
		res.addWarn("search.workers is high (%d); per-source pacing still applies but consider lowering it.", out.Search.Workers)
	}

	if out.Fetch.PaceMinMs > out.Fetch.PaceMaxMs {
		res.addErr("fetch.pace_min_ms must be <= fetch.pace_max_ms")
	}
	if out.Fetch.PaceMinMs < 500 {
		res.addWarn("fetch.pace_min_ms is very low (%d); boards may block aggressive pacing.", out.Fetch.PaceMinMs)
	}
	if out.Fetch.Retries > 5 {
		res.addWarn("fetch.retries is high (%d); exhausted pages already degrade to empty results.", out.Fetch.Retries)
	}

	if len(out.Taxonomy.IncludeTitles) == 0 {
		res.addErr("taxonomy.include_titles must have at least 1 phrase")
	}
	if len(out.Taxonomy.ExcludeTitles) == 0 {
		res.addWarn("taxonomy.exclude_titles is empty; decoy roles will pass the classifier.")
	}

	// simple conflict check
	excludeSet := map[string]bool{}
	for _, x := range out.Taxonomy.ExcludeTitles {
		excludeSet[strings.ToLower(x)] = true
	}
	for _, inc := range out.Taxonomy.IncludeTitles {
		if excludeSet[strings.ToLower(inc)] {
			res.addWarn("phrase appears in both include and exclude lists: %q", inc)
		}
	}

	for i, r := range out.Taxonomy.SeniorityRules {
		if r.Value == "" {
			res.addErr("taxonomy.seniority_rules[%d].value is required", i)
		}
		if len(r.Any) == 0 {
			res.addErr("taxonomy.seniority_rules[%d].any must have at least 1 term", i)
		}
	}
	for i, r := range out.Taxonomy.WorkModeRules {
		if r.Value == "" {
			res.addErr("taxonomy.work_mode_rules[%d].value is required", i)
		}
		if len(r.Any) == 0 {
			res.addErr("taxonomy.work_mode_rules[%d].any must have at least 1 term", i)
		}
	}

	return out, res
}
