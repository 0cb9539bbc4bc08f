package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		min     float64
		max     float64
		display string
	}{
		{
			name:    "lpa range",
			raw:     "25-30 LPA",
			min:     25, max: 30,
			display: "₹25-30 LPA",
		},
		{
			name:    "monthly rupees with commas",
			raw:     "₹ 80,000 - 1,00,000 a month",
			min:     9.6, max: 12,
			display: "₹10-12 LPA",
		},
		{
			name:    "lakhs spelled out",
			raw:     "12 Lakhs to 18 Lakhs",
			min:     12, max: 18,
			display: "₹12-18 LPA",
		},
		{
			name:    "single lpa value",
			raw:     "20 LPA",
			min:     20, max: 20,
			display: "₹20 LPA",
		},
		{
			name:    "crore",
			raw:     "1 Cr",
			min:     100, max: 100,
			display: "₹100 LPA",
		},
		{
			name:    "monthly thousands",
			raw:     "50k-80k per month",
			min:     6, max: 9.6,
			display: "₹6-10 LPA",
		},
		{
			name:    "usd",
			raw:     "$100-150",
			min:     83, max: 124.5,
			display: "₹83-124 LPA",
		},
		{
			name:    "implausible annual treated as monthly rupees",
			raw:     "100000-150000",
			min:     12, max: 18,
			display: "₹12-18 LPA",
		},
		{
			name:    "just past the annual cap",
			raw:     "201-300",
			min:     0.02412, max: 0.036,
			display: "₹0-0 LPA",
		},
		{name: "empty", raw: "", display: ""},
		{name: "not disclosed", raw: "Not Disclosed", display: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, display := ParseSalary(tt.raw)
			assert.InDelta(t, tt.min, min, 0.01)
			assert.InDelta(t, tt.max, max, 0.01)
			assert.Equal(t, tt.display, display)
		})
	}
}
