// Package normalize converts raw posting text (dates, salary,
// experience, skills, work mode, seniority) into structured,
// comparable values. Every parser resolves ambiguity to a documented
// default instead of failing.
package normalize

import (
	"regexp"
	"strings"
	"sync"

	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/domain"
)

// maxSkills caps the extracted skill set for storage economy.
const maxSkills = 15

// Normalizer applies the injected taxonomy tables. The tables are data;
// swapping them never touches this logic.
type Normalizer struct {
	skills         []string
	workModeRules  []config.KeywordRule
	seniorityRules []config.KeywordRule

	skillRe  map[string]*regexp.Regexp
	initOnce sync.Once
}

func New(t config.Taxonomy) *Normalizer {
	return &Normalizer{
		skills:         t.Skills,
		workModeRules:  t.WorkModeRules,
		seniorityRules: t.SeniorityRules,
	}
}

func (n *Normalizer) compile() {
	n.skillRe = make(map[string]*regexp.Regexp, len(n.skills))
	for _, s := range n.skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		n.skillRe[s] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
	}
}

// ExtractSkills returns the vocabulary phrases found in text with
// word-boundary matching, unique, capped at maxSkills. Order follows
// the vocabulary so output is deterministic.
func (n *Normalizer) ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}
	n.initOnce.Do(n.compile)

	text = strings.ToLower(text)
	var found []string
	for _, s := range n.skills {
		key := strings.ToLower(strings.TrimSpace(s))
		re, ok := n.skillRe[key]
		if !ok {
			continue
		}
		if re.MatchString(text) {
			found = append(found, key)
			if len(found) == maxSkills {
				break
			}
		}
	}
	return found
}

// DetectWorkMode classifies remote/hybrid/onsite from free text.
// Rules run top-down, first match wins.
func (n *Normalizer) DetectWorkMode(text string) string {
	return matchRules(text, n.workModeRules, domain.WorkModeUnspecified)
}

// DetectSeniority classifies the title's level. The rule table is
// ordered most-specific-first so "Director of Product" resolves to
// director, not the generic lead bucket.
func (n *Normalizer) DetectSeniority(title string) string {
	return matchRules(title, n.seniorityRules, domain.SeniorityMid)
}

func matchRules(text string, rules []config.KeywordRule, fallback string) string {
	t := strings.ToLower(text)
	for _, r := range rules {
		for _, needle := range r.Any {
			needle = strings.ToLower(needle)
			if needle == "" {
				continue
			}
			if strings.Contains(t, needle) {
				return r.Value
			}
		}
	}
	return fallback
}
