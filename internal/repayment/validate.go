package repayment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMode distinguishes full from partial settlement
type PaymentMode string

const (
	PaymentModeFull    PaymentMode = "FULL"
	PaymentModePartial PaymentMode = "PARTIAL"
)

// nearlyFullTolerance is the fixed one-currency-unit margin within which a
// partial payment counts as full for minimum-percentage purposes, absorbing
// display rounding on the client side.
var nearlyFullTolerance = decimal.NewFromInt(1)

// PaymentIntent is a validated request to settle, handed to the payment
// gateway. It lives for a single settlement attempt and is not persisted here;
// reconciliation after the gateway callback is the order system's job.
type PaymentIntent struct {
	PurchaseID uuid.UUID       `json:"purchase_id"`
	Mode       PaymentMode     `json:"mode"`
	Amount     decimal.Decimal `json:"amount"`
}

// FullPaymentIntent builds the intent that settles the entire payable amount
func FullPaymentIntent(calc *Calculation) *PaymentIntent {
	return &PaymentIntent{
		PurchaseID: calc.PurchaseID,
		Mode:       PaymentModeFull,
		Amount:     calc.FinalPayable,
	}
}

// MinimumPartialPayment is the floor for a partial payment:
// ceil(finalPayable * minPercent / 100)
func MinimumPartialPayment(finalPayable, minPercent decimal.Decimal) decimal.Decimal {
	return finalPayable.Mul(minPercent).Div(oneHundred).Ceil()
}

// ValidatePartialPayment checks a partial settlement request against the
// current quote. Checks short-circuit, first failure wins: the amount must be
// positive, must not exceed the payable amount, and unless it is within one
// currency unit of full must meet the minimum-percentage floor.
func ValidatePartialPayment(requested decimal.Decimal, calc *Calculation, minPercent decimal.Decimal) (*PaymentIntent, error) {
	if !requested.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if requested.GreaterThan(calc.FinalPayable) {
		return nil, ErrAmountExceedsPayable
	}

	if requested.LessThan(calc.FinalPayable.Sub(nearlyFullTolerance)) {
		minimum := MinimumPartialPayment(calc.FinalPayable, minPercent)
		if requested.LessThan(minimum) {
			return nil, &BelowMinimumError{
				MinimumAmount: minimum,
				EnteredAmount: requested,
			}
		}
	}

	return &PaymentIntent{
		PurchaseID: calc.PurchaseID,
		Mode:       PaymentModePartial,
		Amount:     requested,
	}, nil
}

// RemainingBalance is what stays owed after a partial payment, computed
// against the tier-adjusted payable amount, not the original principal. It is
// informational at quote time; a later settlement of the leftover goes through
// its own tier calculation, and the authoritative principal bookkeeping lives
// in the order system.
func RemainingBalance(calc *Calculation, requested decimal.Decimal) decimal.Decimal {
	return calc.FinalPayable.Sub(requested)
}
