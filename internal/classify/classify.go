// Package classify decides whether a raw title denotes the target role.
// Both phrase lists are injected configuration; the algorithm is fixed.
package classify

import "strings"

type Classifier struct {
	include []string
	exclude []string
}

func New(include, exclude []string) *Classifier {
	lower := func(xs []string) []string {
		out := make([]string, 0, len(xs))
		for _, x := range xs {
			x = strings.ToLower(x)
			if x == "" {
				continue
			}
			out = append(out, x)
		}
		return out
	}
	return &Classifier{include: lower(include), exclude: lower(exclude)}
}

// IsTarget reports whether title matches an include phrase without
// matching any exclude phrase. Exclusion wins: "Production Manager"
// stays out even though it contains "manager".
func (c *Classifier) IsTarget(title string) bool {
	t := strings.ToLower(title)
	if t == "" {
		return false
	}
	return containsAny(t, c.include) && !containsAny(t, c.exclude)
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
