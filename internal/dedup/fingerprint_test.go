package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := Fingerprint("Product Manager", "Acme", "Bangalore")
		b := Fingerprint("Product Manager", "Acme", "Bangalore")
		assert.Equal(t, a, b)
		assert.Len(t, a, 12)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		a := Fingerprint("Product Manager", "Acme", "Bangalore")
		b := Fingerprint("  PRODUCT MANAGER ", " acme ", " BANGALORE")
		assert.Equal(t, a, b)
	})

	t.Run("any field changes identity", func(t *testing.T) {
		base := Fingerprint("Product Manager", "Acme", "Bangalore")
		assert.NotEqual(t, base, Fingerprint("Senior Product Manager", "Acme", "Bangalore"))
		assert.NotEqual(t, base, Fingerprint("Product Manager", "Other", "Bangalore"))
		assert.NotEqual(t, base, Fingerprint("Product Manager", "Acme", "Mumbai"))
	})

	t.Run("field boundaries matter", func(t *testing.T) {
		// the separator keeps "ab|c" distinct from "a|bc"
		assert.NotEqual(t, Fingerprint("ab", "c", ""), Fingerprint("a", "bc", ""))
	})
}

func TestSet(t *testing.T) {
	s := NewSet()
	assert.True(t, s.Add("abc"))
	assert.False(t, s.Add("abc"))
	assert.True(t, s.Add("def"))
	assert.Equal(t, 2, s.Len())
}
