package repayment

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrimart/repayment/internal/purchase"
	"github.com/agrimart/repayment/internal/tariff"
)

// ProjectionPoint is one day of the forward-looking settlement schedule
type ProjectionPoint struct {
	Day          int             `json:"day"`
	Date         time.Time       `json:"date"`
	TierType     tariff.TierKind `json:"tier_type"`
	RatePercent  decimal.Decimal `json:"rate_percent"`
	FinalPayable decimal.Decimal `json:"final_payable"`
}

// Project returns the settlement schedule for a purchase: one point per day,
// ordered ascending, from day 1 (day 0 is unsettleable) through the last day
// boundary the tier table defines. An open-ended final tier contributes its
// start day and nothing beyond; the schedule never extrapolates indefinitely.
//
// The sequence is lazy and can be ranged over more than once.
func Project(p *purchase.Purchase, table tariff.Table) iter.Seq[ProjectionPoint] {
	purchaseDate := truncateToDate(p.CreatedAt)
	lastDay := table.MaxDefinedDay()

	return func(yield func(ProjectionPoint) bool) {
		for day := 1; day <= lastDay; day++ {
			res := table.Resolve(day)
			adjustment := p.PrincipalAmount.Mul(res.RatePercent).Div(oneHundred).Round(2)

			final := p.PrincipalAmount
			switch res.Kind {
			case tariff.TierKindDiscount:
				final = final.Sub(adjustment)
			case tariff.TierKindInterest:
				final = final.Add(adjustment)
			}

			point := ProjectionPoint{
				Day:          day,
				Date:         purchaseDate.AddDate(0, 0, day),
				TierType:     res.Kind,
				RatePercent:  res.RatePercent,
				FinalPayable: final,
			}
			if !yield(point) {
				return
			}
		}
	}
}
