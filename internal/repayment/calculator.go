package repayment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrimart/repayment/internal/purchase"
	"github.com/agrimart/repayment/internal/tariff"
)

var oneHundred = decimal.NewFromInt(100)

// Calculation is a settlement quote for a purchase as of one evaluation date.
// It is derived fresh on every request and never persisted.
type Calculation struct {
	PurchaseID       uuid.UUID       `json:"purchase_id"`
	BaseAmount       decimal.Decimal `json:"base_amount"`
	DaysElapsed      int             `json:"days_elapsed"`
	TierType         tariff.TierKind `json:"tier_type"`
	AppliedRate      decimal.Decimal `json:"applied_rate"`
	TierLabel        string          `json:"tier_label"`
	AdjustmentAmount decimal.Decimal `json:"adjustment_amount"`
	FinalPayable     decimal.Decimal `json:"final_payable"`
	EvaluationDate   time.Time       `json:"evaluation_date"`
}

// truncateToDate drops the time-of-day component of a timestamp
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days between two timestamps. Both ends
// are truncated to date-only components first so partial days never shift the
// tier classification.
func daysBetween(from, to time.Time) int {
	return int(truncateToDate(to).Sub(truncateToDate(from)).Hours() / 24)
}

// Calculate produces the settlement quote for a purchase as of evaluationDate.
// The evaluation date is an explicit parameter rather than a clock read so the
// calculation stays pure; the caller supplies "today".
//
// The adjustment is rounded to currency precision (2 decimal places) once,
// immediately after it is computed, and the rounded value flows into
// FinalPayable so the quoted amount matches what the gateway is asked to charge.
func Calculate(p *purchase.Purchase, table tariff.Table, evaluationDate time.Time) (*Calculation, error) {
	if !p.PrincipalAmount.IsPositive() {
		return nil, purchase.ErrInvalidPrincipal
	}

	days := daysBetween(p.CreatedAt, evaluationDate)
	if days < 0 {
		return nil, ErrEvaluationBeforePurchase
	}
	if days == 0 {
		return nil, &Day0RestrictionError{
			EarliestRepaymentDate: truncateToDate(p.CreatedAt).AddDate(0, 0, 1),
		}
	}

	res := table.Resolve(days)
	base := p.PrincipalAmount
	adjustment := base.Mul(res.RatePercent).Div(oneHundred).Round(2)

	final := base
	switch res.Kind {
	case tariff.TierKindDiscount:
		final = base.Sub(adjustment)
	case tariff.TierKindInterest:
		final = base.Add(adjustment)
	}

	return &Calculation{
		PurchaseID:       p.ID,
		BaseAmount:       base,
		DaysElapsed:      days,
		TierType:         res.Kind,
		AppliedRate:      res.RatePercent,
		TierLabel:        res.Label,
		AdjustmentAmount: adjustment,
		FinalPayable:     final,
		EvaluationDate:   truncateToDate(evaluationDate),
	}, nil
}
