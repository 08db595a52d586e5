package repayment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimart/repayment/internal/tariff"
)

func TestProjectCoversTheDefinedSchedule(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 14, 0, 0, 0, time.UTC)
	p := testPurchase(10000, createdAt)
	table := tariff.Default()

	var points []ProjectionPoint
	for point := range Project(p, table) {
		points = append(points, point)
	}

	// Day 1 through the last defined boundary (open-ended tier start, day 91)
	require.Len(t, points, 91)
	assert.Equal(t, 1, points[0].Day)
	assert.Equal(t, 91, points[len(points)-1].Day)

	// Ordered by day ascending, dates follow the purchase date
	for i, point := range points {
		assert.Equal(t, i+1, point.Day)
		expectedDate := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		assert.Equal(t, expectedDate, point.Date, "day %d", point.Day)
	}

	// Spot-check tier transitions
	assert.Equal(t, tariff.TierKindDiscount, points[29].TierType) // day 30
	assert.True(t, points[29].FinalPayable.Equal(decimal.NewFromInt(9000)))
	assert.Equal(t, tariff.TierKindDiscount, points[30].TierType) // day 31
	assert.True(t, points[30].FinalPayable.Equal(decimal.NewFromInt(9500)))
	assert.Equal(t, tariff.TierKindNeutral, points[74].TierType) // day 75
	assert.True(t, points[74].FinalPayable.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, tariff.TierKindInterest, points[90].TierType) // day 91
	assert.True(t, points[90].FinalPayable.Equal(decimal.NewFromInt(10200)))
}

func TestProjectIsRestartable(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := testPurchase(10000, createdAt)
	seq := Project(p, tariff.Default())

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	first := count()
	second := count()
	assert.Equal(t, first, second)
	assert.Equal(t, 91, first)
}

func TestProjectStopsEarlyWhenConsumerBreaks(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	p := testPurchase(10000, createdAt)

	var collected []int
	for point := range Project(p, tariff.Default()) {
		collected = append(collected, point.Day)
		if point.Day == 3 {
			break
		}
	}

	assert.Equal(t, []int{1, 2, 3}, collected)
}
