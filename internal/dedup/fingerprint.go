// Package dedup assigns each posting a stable identity and suppresses
// repeats within a run. The fingerprint is also the durable key the
// store dedupes on across runs.
package dedup

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// fingerprintLen truncates the digest to a short stable identity.
const fingerprintLen = 12

// Fingerprint is a pure function of the identity triple. Case and
// surrounding whitespace never affect it.
func Fingerprint(title, company, location string) string {
	key := strings.ToLower(strings.TrimSpace(title)) + "|" +
		strings.ToLower(strings.TrimSpace(company)) + "|" +
		strings.ToLower(strings.TrimSpace(location))
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// Set tracks fingerprints seen within a single run.
type Set struct {
	seen map[string]struct{}
}

func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add reports whether id was new to the set.
func (s *Set) Add(id string) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

func (s *Set) Len() int { return len(s.seen) }
