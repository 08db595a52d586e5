package repayment

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrInvalidAmount            = errors.New("repayment amount must be a positive number")
	ErrAmountExceedsPayable     = errors.New("repayment amount exceeds the amount payable")
	ErrAlreadySettled           = errors.New("purchase is already settled")
	ErrUnknownPaymentMode       = errors.New("payment mode must be FULL or PARTIAL")
	ErrEvaluationBeforePurchase = errors.New("evaluation date is before the purchase date")
)

// Day0RestrictionError rejects settlement on the calendar day of purchase.
// Waiting resolves it: repayment opens on EarliestRepaymentDate.
type Day0RestrictionError struct {
	EarliestRepaymentDate time.Time
}

func (e *Day0RestrictionError) Error() string {
	return fmt.Sprintf(
		"repayment is not available on the day of purchase; please settle on or after %s",
		e.EarliestRepaymentDate.Format("2006-01-02"),
	)
}

// BelowMinimumError rejects a partial payment under the percentage floor.
// It carries both the computed minimum and what the user entered for display.
type BelowMinimumError struct {
	MinimumAmount decimal.Decimal
	EnteredAmount decimal.Decimal
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf(
		"partial payment of %s is below the minimum of %s",
		e.EnteredAmount.StringFixed(2), e.MinimumAmount.StringFixed(2),
	)
}
