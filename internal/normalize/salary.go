package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var reNumber = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// Scale factors that map a raw figure onto the normalized annual-lakh
// unit. "k" figures are monthly take-home, approximated to LPA; USD
// uses a fixed FX constant so records stay comparable run to run.
const (
	croreMultiplier    = 100
	monthlyKToLPA      = 0.12
	usdToLPA           = 0.83
	plausibleAnnualCap = 200
)

// ParseSalary extracts up to two figures from raw salary text and
// normalizes them to annual lakh. Undisclosed or unparseable input
// yields (0, 0, ""); this function never fails.
func ParseSalary(raw string) (min, max float64, display string) {
	raw = strings.ToLower(raw)
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.ReplaceAll(raw, " ", "")
	if raw == "" {
		return 0, 0, ""
	}

	tokens := reNumber.FindAllString(raw, 2)
	if len(tokens) == 0 {
		return 0, 0, ""
	}

	multiplier := 1.0
	switch {
	case strings.Contains(raw, "lpa") || strings.Contains(raw, "lac") || strings.Contains(raw, "lakh"):
		multiplier = 1
	case strings.Contains(raw, "cr"):
		multiplier = croreMultiplier
	case strings.Contains(raw, "k"):
		multiplier = monthlyKToLPA
	case strings.Contains(raw, "$"):
		multiplier = usdToLPA
	}

	nums := make([]float64, 0, 2)
	for _, tok := range tokens {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		nums = append(nums, f*multiplier)
	}
	if len(nums) == 0 {
		return 0, 0, ""
	}

	min, max = nums[0], nums[0]
	if len(nums) > 1 {
		if nums[1] < min {
			min = nums[1]
		}
		if nums[1] > max {
			max = nums[1]
		}
	}

	// A figure past any plausible LPA is a monthly amount in rupees;
	// annualize and rescale to lakh.
	if max > plausibleAnnualCap {
		min = min * 12 / 100000
		max = max * 12 / 100000
	}

	if min == max {
		display = fmt.Sprintf("₹%.0f LPA", min)
	} else {
		display = fmt.Sprintf("₹%.0f-%.0f LPA", min, max)
	}
	return min, max, display
}
