package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExperience(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		min     int
		max     int
		display string
	}{
		{name: "hyphen range", raw: "5-8 years", min: 5, max: 8, display: "5-8 yrs"},
		{name: "to range", raw: "3 to 6 Yrs", min: 3, max: 6, display: "3-6 yrs"},
		{name: "en dash range", raw: "2–4 years", min: 2, max: 4, display: "2-4 yrs"},
		{name: "reversed range", raw: "8-5 years", min: 5, max: 8, display: "5-8 yrs"},
		{name: "open ended", raw: "7+ years", min: 7, max: 10, display: "7+ yrs"},
		{name: "bare number", raw: "4 years", min: 4, max: 7, display: "4+ yrs"},
		{name: "empty", raw: "", display: ""},
		{name: "no digits", raw: "Freshers welcome", display: ""},
		{name: "number without year marker", raw: "2024 batch", display: ""},
		{name: "bare digit", raw: "4", display: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, display := ParseExperience(tt.raw)
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)
			assert.Equal(t, tt.display, display)
		})
	}
}
