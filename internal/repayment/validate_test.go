package repayment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteWithPayable(payable string) *Calculation {
	amount := decimal.RequireFromString(payable)
	return &Calculation{
		PurchaseID:   uuid.New(),
		BaseAmount:   amount,
		FinalPayable: amount,
	}
}

func TestValidatePartialPaymentFloor(t *testing.T) {
	calc := quoteWithPayable("10000")
	minPercent := decimal.NewFromInt(5)

	t.Run("below minimum fails with computed values", func(t *testing.T) {
		_, err := ValidatePartialPayment(decimal.RequireFromString("499"), calc, minPercent)
		require.Error(t, err)

		var belowMin *BelowMinimumError
		require.ErrorAs(t, err, &belowMin)
		assert.True(t, belowMin.MinimumAmount.Equal(decimal.NewFromInt(500)), "minimum %s", belowMin.MinimumAmount)
		assert.True(t, belowMin.EnteredAmount.Equal(decimal.NewFromInt(499)))
	})

	t.Run("exactly the minimum succeeds", func(t *testing.T) {
		intent, err := ValidatePartialPayment(decimal.RequireFromString("500"), calc, minPercent)
		require.NoError(t, err)
		assert.Equal(t, PaymentModePartial, intent.Mode)
		assert.True(t, intent.Amount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("nearly full bypasses the floor", func(t *testing.T) {
		// Within one currency unit of full payment
		intent, err := ValidatePartialPayment(decimal.RequireFromString("9999.50"), calc, minPercent)
		require.NoError(t, err)
		assert.True(t, intent.Amount.Equal(decimal.RequireFromString("9999.50")))
	})

	t.Run("exceeding the payable fails", func(t *testing.T) {
		_, err := ValidatePartialPayment(decimal.RequireFromString("10001"), calc, minPercent)
		assert.ErrorIs(t, err, ErrAmountExceedsPayable)
	})

	t.Run("zero and negative amounts fail", func(t *testing.T) {
		_, err := ValidatePartialPayment(decimal.Zero, calc, minPercent)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = ValidatePartialPayment(decimal.NewFromInt(-5), calc, minPercent)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestValidationShortCircuitOrder(t *testing.T) {
	calc := quoteWithPayable("10000")
	minPercent := decimal.NewFromInt(5)

	// A negative amount is both invalid and below minimum; the positivity
	// check must win
	_, err := ValidatePartialPayment(decimal.NewFromInt(-1), calc, minPercent)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMinimumPartialPaymentRoundsUp(t *testing.T) {
	// 10001 * 5% = 500.05, ceiling to 501
	minimum := MinimumPartialPayment(decimal.RequireFromString("10001"), decimal.NewFromInt(5))
	assert.True(t, minimum.Equal(decimal.NewFromInt(501)), "minimum %s", minimum)
}

func TestRemainingBalanceUsesAdjustedPayable(t *testing.T) {
	// The remaining balance comes off the tier-adjusted payable, not the
	// original principal
	calc := &Calculation{
		PurchaseID:   uuid.New(),
		BaseAmount:   decimal.RequireFromString("11111"),
		FinalPayable: decimal.RequireFromString("10000"),
	}

	remaining := RemainingBalance(calc, decimal.RequireFromString("6000"))
	assert.True(t, remaining.Equal(decimal.NewFromInt(4000)), "remaining %s", remaining)
}

func TestFullPaymentIntent(t *testing.T) {
	calc := quoteWithPayable("9500")

	intent := FullPaymentIntent(calc)
	assert.Equal(t, PaymentModeFull, intent.Mode)
	assert.Equal(t, calc.PurchaseID, intent.PurchaseID)
	assert.True(t, intent.Amount.Equal(calc.FinalPayable))
}
