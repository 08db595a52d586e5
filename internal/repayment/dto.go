package repayment

import (
	"github.com/shopspring/decimal"

	"github.com/agrimart/repayment/internal/gateway"
	"github.com/agrimart/repayment/internal/tariff"
)

// InitiateRepaymentRequest represents the request body for settling a purchase.
// Amount is required for PARTIAL mode and ignored for FULL mode.
type InitiateRepaymentRequest struct {
	Mode   PaymentMode     `json:"mode" validate:"required,oneof=FULL PARTIAL"`
	Amount decimal.Decimal `json:"amount,omitempty"`
}

// CalculationResponse represents the response for a settlement quote
type CalculationResponse struct {
	PurchaseID       string          `json:"purchase_id"`
	BaseAmount       decimal.Decimal `json:"base_amount"`
	DaysElapsed      int             `json:"days_elapsed"`
	TierType         tariff.TierKind `json:"tier_type"`
	AppliedRate      decimal.Decimal `json:"applied_rate"`
	TierLabel        string          `json:"tier_label"`
	AdjustmentAmount decimal.Decimal `json:"adjustment_amount"`
	FinalPayable     decimal.Decimal `json:"final_payable"`
	EvaluationDate   string          `json:"evaluation_date"`
}

// ToResponse converts a Calculation to a CalculationResponse DTO
func (c *Calculation) ToResponse() *CalculationResponse {
	return &CalculationResponse{
		PurchaseID:       c.PurchaseID.String(),
		BaseAmount:       c.BaseAmount,
		DaysElapsed:      c.DaysElapsed,
		TierType:         c.TierType,
		AppliedRate:      c.AppliedRate,
		TierLabel:        c.TierLabel,
		AdjustmentAmount: c.AdjustmentAmount,
		FinalPayable:     c.FinalPayable,
		EvaluationDate:   c.EvaluationDate.Format("2006-01-02"),
	}
}

// ProjectionPointResponse represents one schedule entry in API responses
type ProjectionPointResponse struct {
	Day          int             `json:"day"`
	Date         string          `json:"date"`
	TierType     tariff.TierKind `json:"tier_type"`
	RatePercent  decimal.Decimal `json:"rate_percent"`
	FinalPayable decimal.Decimal `json:"final_payable"`
}

// ToResponse converts a ProjectionPoint to a ProjectionPointResponse DTO
func (p ProjectionPoint) ToResponse() ProjectionPointResponse {
	return ProjectionPointResponse{
		Day:          p.Day,
		Date:         p.Date.Format("2006-01-02"),
		TierType:     p.TierType,
		RatePercent:  p.RatePercent,
		FinalPayable: p.FinalPayable,
	}
}

// IntentResponse represents the validated payment intent
type IntentResponse struct {
	PurchaseID string          `json:"purchase_id"`
	Mode       PaymentMode     `json:"mode"`
	Amount     decimal.Decimal `json:"amount"`
}

// HandoffResponse represents the response after a repayment is handed to the gateway
type HandoffResponse struct {
	Intent           IntentResponse       `json:"intent"`
	Calculation      *CalculationResponse `json:"calculation"`
	RemainingBalance decimal.Decimal      `json:"remaining_balance"`
	Order            *gateway.Order       `json:"order"`
}

// ToResponse converts a HandoffResult to a HandoffResponse DTO
func (r *HandoffResult) ToResponse() *HandoffResponse {
	return &HandoffResponse{
		Intent: IntentResponse{
			PurchaseID: r.Intent.PurchaseID.String(),
			Mode:       r.Intent.Mode,
			Amount:     r.Intent.Amount,
		},
		Calculation:      r.Calculation.ToResponse(),
		RemainingBalance: r.RemainingBalance,
		Order:            r.Order,
	}
}
