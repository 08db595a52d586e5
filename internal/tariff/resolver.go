package tariff

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Resolution is the outcome of mapping an elapsed day count to a tier
type Resolution struct {
	Kind        TierKind        `json:"kind"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	Label       string          `json:"label"`
}

// Neutral is the resolution for any day not covered by a tier
func Neutral() Resolution {
	return Resolution{
		Kind:        TierKindNeutral,
		RatePercent: decimal.Zero,
		Label:       "Standard Rate",
	}
}

// Resolve maps an elapsed day count to a tier classification and rate.
// Discount tiers are scanned first in ascending start order; the first range
// containing the day wins. Interest tiers are scanned next the same way.
// Days covered by neither set are neutral at rate 0.
//
// Day 0 is guarded against upstream and never reaches the resolver.
func (t Table) Resolve(daysElapsed int) Resolution {
	for _, tier := range t.DiscountTiers {
		if tier.Contains(daysElapsed) {
			return Resolution{
				Kind:        TierKindDiscount,
				RatePercent: tier.RatePercent,
				Label:       fmt.Sprintf("%s%% Early Payment Discount", tier.RatePercent.String()),
			}
		}
	}
	for _, tier := range t.InterestTiers {
		if tier.Contains(daysElapsed) {
			return Resolution{
				Kind:        TierKindInterest,
				RatePercent: tier.RatePercent,
				Label:       fmt.Sprintf("%s%% Late Payment Interest", tier.RatePercent.String()),
			}
		}
	}
	return Neutral()
}

// MaxDefinedDay returns the highest day boundary the table defines: the
// largest bounded end day, or the start day for an open-ended tier. Forward
// projections stop here rather than extrapolating indefinitely.
func (t Table) MaxDefinedDay() int {
	max := 0
	for _, tier := range append(append([]Tier{}, t.DiscountTiers...), t.InterestTiers...) {
		boundary := tier.EndDay
		if boundary == OpenEnded {
			boundary = tier.StartDay
		}
		if boundary > max {
			max = boundary
		}
	}
	return max
}
