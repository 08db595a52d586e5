package tariff

import "github.com/shopspring/decimal"

// TierPayload represents a single tier in API requests and responses.
// A null end_day means the tier is open-ended.
type TierPayload struct {
	StartDay    int             `json:"start_day"`
	EndDay      *int            `json:"end_day,omitempty"`
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// ReplaceTableRequest represents the request body for replacing the tier table
type ReplaceTableRequest struct {
	DiscountTiers            []TierPayload   `json:"discount_tiers"`
	InterestTiers            []TierPayload   `json:"interest_tiers"`
	MinPartialPaymentPercent decimal.Decimal `json:"min_partial_payment_percent"`
}

// TableResponse represents the response for the active tier table
type TableResponse struct {
	DiscountTiers            []TierPayload   `json:"discount_tiers"`
	InterestTiers            []TierPayload   `json:"interest_tiers"`
	MinPartialPaymentPercent decimal.Decimal `json:"min_partial_payment_percent"`
}

// ToTable converts a ReplaceTableRequest into a Table model
func (req *ReplaceTableRequest) ToTable() Table {
	return Table{
		DiscountTiers:            payloadsToTiers(req.DiscountTiers),
		InterestTiers:            payloadsToTiers(req.InterestTiers),
		MinPartialPaymentPercent: req.MinPartialPaymentPercent,
	}
}

// ToResponse converts a Table model into a TableResponse DTO
func (t Table) ToResponse() *TableResponse {
	return &TableResponse{
		DiscountTiers:            tiersToPayloads(t.DiscountTiers),
		InterestTiers:            tiersToPayloads(t.InterestTiers),
		MinPartialPaymentPercent: t.MinPartialPaymentPercent,
	}
}

func payloadsToTiers(payloads []TierPayload) []Tier {
	tiers := make([]Tier, len(payloads))
	for i, p := range payloads {
		end := OpenEnded
		if p.EndDay != nil {
			end = *p.EndDay
		}
		tiers[i] = Tier{StartDay: p.StartDay, EndDay: end, RatePercent: p.RatePercent}
	}
	return tiers
}

func tiersToPayloads(tiers []Tier) []TierPayload {
	payloads := make([]TierPayload, len(tiers))
	for i, t := range tiers {
		p := TierPayload{StartDay: t.StartDay, RatePercent: t.RatePercent}
		if t.EndDay != OpenEnded {
			end := t.EndDay
			p.EndDay = &end
		}
		payloads[i] = p
	}
	return payloads
}
