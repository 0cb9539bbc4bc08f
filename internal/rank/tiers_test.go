package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/domain"
)

func TestTierFor(t *testing.T) {
	top, mid := config.DefaultCompanyTiers()
	tt := TierTable{Cfg: config.Companies{
		Top:          top,
		Mid:          mid,
		StartupHints: []string{"technologies", "labs"},
	}}

	tests := []struct {
		name    string
		company string
		want    string
	}{
		{name: "exact top", company: "Google", want: domain.TierTop},
		{name: "top with suffix", company: "Flipkart Internet Pvt Ltd", want: domain.TierTop},
		{name: "case insensitive", company: "RAZORPAY", want: domain.TierTop},
		{name: "mid list", company: "Postman", want: domain.TierMid},
		{name: "startup hint word", company: "Quantum Technologies", want: domain.TierMid},
		{name: "hint must be whole word", company: "Biotechnologies Corp", want: domain.TierUnknown},
		{name: "unknown", company: "Some Consulting Firm", want: domain.TierUnknown},
		{name: "empty", company: "", want: domain.TierUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tt.TierFor(tc.company))
		})
	}
}
