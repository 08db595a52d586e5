package repayment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimart/repayment/internal/purchase"
	"github.com/agrimart/repayment/internal/tariff"
)

func testPurchase(principal int64, createdAt time.Time) *purchase.Purchase {
	return &purchase.Purchase{
		ID:              uuid.New(),
		VendorID:        1,
		LotReference:    "LOT-001",
		PrincipalAmount: decimal.NewFromInt(principal),
		Status:          purchase.PurchaseStatusOutstanding,
		CreatedAt:       createdAt,
	}
}

func TestCalculateDay0Restriction(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 9, 15, 0, 0, time.UTC)
	p := testPurchase(10000, createdAt)

	// Same calendar day, later time of day
	evaluation := time.Date(2025, time.March, 1, 23, 45, 0, 0, time.UTC)
	_, err := Calculate(p, tariff.Default(), evaluation)
	require.Error(t, err)

	var day0Err *Day0RestrictionError
	require.ErrorAs(t, err, &day0Err)
	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), day0Err.EarliestRepaymentDate)
}

func TestCalculateRejectsBackdatedEvaluation(t *testing.T) {
	createdAt := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	p := testPurchase(10000, createdAt)

	_, err := Calculate(p, tariff.Default(), createdAt.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrEvaluationBeforePurchase)
}

func TestCalculateRejectsNonPositivePrincipal(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := testPurchase(0, createdAt)

	_, err := Calculate(p, tariff.Default(), createdAt.AddDate(0, 0, 5))
	assert.ErrorIs(t, err, purchase.ErrInvalidPrincipal)
}

func TestCalculateTierBoundaries(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	table := tariff.Default()

	tests := []struct {
		days         int
		tierType     tariff.TierKind
		rate         int64
		finalPayable int64
	}{
		{days: 1, tierType: tariff.TierKindDiscount, rate: 10, finalPayable: 9000},
		{days: 30, tierType: tariff.TierKindDiscount, rate: 10, finalPayable: 9000},
		{days: 31, tierType: tariff.TierKindDiscount, rate: 5, finalPayable: 9500},
		{days: 60, tierType: tariff.TierKindDiscount, rate: 5, finalPayable: 9500},
		{days: 75, tierType: tariff.TierKindNeutral, rate: 0, finalPayable: 10000},
		{days: 91, tierType: tariff.TierKindInterest, rate: 2, finalPayable: 10200},
		{days: 400, tierType: tariff.TierKindInterest, rate: 2, finalPayable: 10200},
	}

	for _, tt := range tests {
		p := testPurchase(10000, createdAt)
		calc, err := Calculate(p, table, createdAt.AddDate(0, 0, tt.days))
		require.NoError(t, err, "day %d", tt.days)

		assert.Equal(t, tt.days, calc.DaysElapsed)
		assert.Equal(t, tt.tierType, calc.TierType, "day %d", tt.days)
		assert.True(t, calc.AppliedRate.Equal(decimal.NewFromInt(tt.rate)), "day %d: rate %s", tt.days, calc.AppliedRate)
		assert.True(t, calc.FinalPayable.Equal(decimal.NewFromInt(tt.finalPayable)),
			"day %d: payable %s", tt.days, calc.FinalPayable)
	}
}

func TestCalculateIgnoresTimeOfDay(t *testing.T) {
	// One minute short of a full 24 hours still counts as one calendar day
	createdAt := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.UTC)
	evaluation := time.Date(2025, time.March, 2, 0, 1, 0, 0, time.UTC)

	calc, err := Calculate(testPurchase(10000, createdAt), tariff.Default(), evaluation)
	require.NoError(t, err)
	assert.Equal(t, 1, calc.DaysElapsed)
}

func TestCalculateRoundsAdjustmentToCurrencyPrecision(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := testPurchase(0, createdAt)
	p.PrincipalAmount = decimal.RequireFromString("999.99")

	calc, err := Calculate(p, tariff.Default(), createdAt.AddDate(0, 0, 10))
	require.NoError(t, err)

	// 999.99 * 10% = 99.999, rounded once to 100.00 and propagated
	assert.True(t, calc.AdjustmentAmount.Equal(decimal.NewFromInt(100)), "adjustment %s", calc.AdjustmentAmount)
	assert.True(t, calc.FinalPayable.Equal(decimal.RequireFromString("899.99")), "payable %s", calc.FinalPayable)
}

func TestCalculateIsIdempotent(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	p := testPurchase(10000, createdAt)
	evaluation := createdAt.AddDate(0, 0, 45)

	first, err := Calculate(p, tariff.Default(), evaluation)
	require.NoError(t, err)
	second, err := Calculate(p, tariff.Default(), evaluation)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPayableStepsUpAcrossTierBoundaries(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	table := tariff.Default()
	p := testPurchase(10000, createdAt)

	var previous decimal.Decimal
	for i, day := range []int{30, 31, 61, 91} {
		calc, err := Calculate(p, table, createdAt.AddDate(0, 0, day))
		require.NoError(t, err)
		if i > 0 {
			assert.True(t, calc.FinalPayable.GreaterThan(previous),
				"day %d payable %s should exceed %s", day, calc.FinalPayable, previous)
		}
		previous = calc.FinalPayable
	}

	// Within a single tier the payable amount is constant
	atDay5, err := Calculate(p, table, createdAt.AddDate(0, 0, 5))
	require.NoError(t, err)
	atDay30, err := Calculate(p, table, createdAt.AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.True(t, atDay5.FinalPayable.Equal(atDay30.FinalPayable))
}
