package tariff

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// TierKind classifies a day range as rewarding or penalizing settlement
type TierKind string

const (
	TierKindDiscount TierKind = "DISCOUNT"
	TierKindNeutral  TierKind = "NEUTRAL"
	TierKindInterest TierKind = "INTEREST"
)

// OpenEnded marks a tier with no upper day bound. Only the last interest
// tier may be open-ended; every day beyond its start keeps accruing at its rate.
const OpenEnded = -1

var oneHundred = decimal.NewFromInt(100)

// Tier is an inclusive day range [StartDay, EndDay] with a percentage rate,
// measured in whole days from the purchase date
type Tier struct {
	StartDay    int             `json:"start_day"`
	EndDay      int             `json:"end_day"` // OpenEnded (-1) means unbounded
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// Contains reports whether the given elapsed day falls within the tier
func (t Tier) Contains(day int) bool {
	if day < t.StartDay {
		return false
	}
	return t.EndDay == OpenEnded || day <= t.EndDay
}

// Table is the full rate tier configuration for repayment settlement.
// Days not covered by any tier are neutral (rate 0).
type Table struct {
	DiscountTiers            []Tier          `json:"discount_tiers"`
	InterestTiers            []Tier          `json:"interest_tiers"`
	MinPartialPaymentPercent decimal.Decimal `json:"min_partial_payment_percent"`
}

// ConfigurationError reports a malformed tier table. It is not
// user-recoverable; the configuration owner has to fix the table.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid rate tier configuration: %s", e.Reason)
}

// Validate checks the table invariants: non-negative bounds, start <= end,
// rates within [0, 100], an open end only on the final interest tier, and no
// overlap across the union of discount and interest ranges.
// A malformed table fails closed with a ConfigurationError.
func (t Table) Validate() error {
	if len(t.DiscountTiers) == 0 && len(t.InterestTiers) == 0 {
		return &ConfigurationError{Reason: "at least one tier is required"}
	}

	for i, tier := range t.DiscountTiers {
		if err := validateTier(tier, fmt.Sprintf("discount tier %d", i+1)); err != nil {
			return err
		}
		if tier.EndDay == OpenEnded {
			return &ConfigurationError{Reason: fmt.Sprintf("discount tier %d must not be open-ended", i+1)}
		}
	}
	for i, tier := range t.InterestTiers {
		if err := validateTier(tier, fmt.Sprintf("interest tier %d", i+1)); err != nil {
			return err
		}
		if tier.EndDay == OpenEnded && i != len(t.InterestTiers)-1 {
			return &ConfigurationError{Reason: fmt.Sprintf("interest tier %d is open-ended but not last", i+1)}
		}
	}

	// Overlap check across the union of both tier sets
	all := make([]Tier, 0, len(t.DiscountTiers)+len(t.InterestTiers))
	all = append(all, t.DiscountTiers...)
	all = append(all, t.InterestTiers...)
	sort.Slice(all, func(i, j int) bool { return all[i].StartDay < all[j].StartDay })
	for i := 1; i < len(all); i++ {
		prev := all[i-1]
		if prev.EndDay == OpenEnded || prev.EndDay >= all[i].StartDay {
			return &ConfigurationError{Reason: fmt.Sprintf(
				"tier day ranges overlap: [%d, %d] and [%d, %d]",
				prev.StartDay, prev.EndDay, all[i].StartDay, all[i].EndDay)}
		}
	}

	if !t.MinPartialPaymentPercent.IsPositive() || t.MinPartialPaymentPercent.GreaterThan(oneHundred) {
		return &ConfigurationError{Reason: "min partial payment percent must be in (0, 100]"}
	}

	return nil
}

func validateTier(tier Tier, name string) error {
	if tier.StartDay < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("%s has a negative start day", name)}
	}
	if tier.EndDay != OpenEnded && tier.EndDay < tier.StartDay {
		return &ConfigurationError{Reason: fmt.Sprintf("%s ends before it starts", name)}
	}
	if tier.RatePercent.IsNegative() || tier.RatePercent.GreaterThan(oneHundred) {
		return &ConfigurationError{Reason: fmt.Sprintf("%s rate must be in [0, 100]", name)}
	}
	return nil
}

// Default returns the compiled-in tier table used when no table has been
// configured: 10% discount through day 30, 5% through day 60, days 61-90
// neutral, then 2% interest from day 91 onward. Minimum partial payment is 5%.
func Default() Table {
	return Table{
		DiscountTiers: []Tier{
			{StartDay: 0, EndDay: 30, RatePercent: decimal.NewFromInt(10)},
			{StartDay: 31, EndDay: 60, RatePercent: decimal.NewFromInt(5)},
		},
		InterestTiers: []Tier{
			{StartDay: 91, EndDay: OpenEnded, RatePercent: decimal.NewFromInt(2)},
		},
		MinPartialPaymentPercent: decimal.NewFromInt(5),
	}
}
