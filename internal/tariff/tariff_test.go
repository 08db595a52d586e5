package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsMalformedTables(t *testing.T) {
	five := decimal.NewFromInt(5)

	tests := []struct {
		name  string
		table Table
	}{
		{
			name:  "empty table",
			table: Table{MinPartialPaymentPercent: five},
		},
		{
			name: "overlapping discount tiers",
			table: Table{
				DiscountTiers: []Tier{
					{StartDay: 0, EndDay: 30, RatePercent: decimal.NewFromInt(10)},
					{StartDay: 25, EndDay: 60, RatePercent: five},
				},
				MinPartialPaymentPercent: five,
			},
		},
		{
			name: "discount and interest ranges overlap",
			table: Table{
				DiscountTiers: []Tier{
					{StartDay: 0, EndDay: 60, RatePercent: decimal.NewFromInt(10)},
				},
				InterestTiers: []Tier{
					{StartDay: 50, EndDay: OpenEnded, RatePercent: decimal.NewFromInt(2)},
				},
				MinPartialPaymentPercent: five,
			},
		},
		{
			name: "tier ends before it starts",
			table: Table{
				DiscountTiers: []Tier{
					{StartDay: 30, EndDay: 10, RatePercent: decimal.NewFromInt(10)},
				},
				MinPartialPaymentPercent: five,
			},
		},
		{
			name: "open-ended discount tier",
			table: Table{
				DiscountTiers: []Tier{
					{StartDay: 0, EndDay: OpenEnded, RatePercent: decimal.NewFromInt(10)},
				},
				MinPartialPaymentPercent: five,
			},
		},
		{
			name: "open-ended interest tier not last",
			table: Table{
				InterestTiers: []Tier{
					{StartDay: 61, EndDay: OpenEnded, RatePercent: decimal.NewFromInt(1)},
					{StartDay: 91, EndDay: 120, RatePercent: decimal.NewFromInt(2)},
				},
				MinPartialPaymentPercent: five,
			},
		},
		{
			name: "rate above 100",
			table: Table{
				DiscountTiers: []Tier{
					{StartDay: 0, EndDay: 30, RatePercent: decimal.NewFromInt(101)},
				},
				MinPartialPaymentPercent: five,
			},
		},
		{
			name: "zero min partial percent",
			table: Table{
				DiscountTiers: []Tier{
					{StartDay: 0, EndDay: 30, RatePercent: decimal.NewFromInt(10)},
				},
				MinPartialPaymentPercent: decimal.Zero,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			require.Error(t, err)

			var confErr *ConfigurationError
			assert.ErrorAs(t, err, &confErr)
		})
	}
}

func TestResolveTierBoundaries(t *testing.T) {
	table := Default()

	tests := []struct {
		days     int
		kind     TierKind
		rate     int64
	}{
		{days: 1, kind: TierKindDiscount, rate: 10},
		{days: 30, kind: TierKindDiscount, rate: 10},
		{days: 31, kind: TierKindDiscount, rate: 5},
		{days: 60, kind: TierKindDiscount, rate: 5},
		{days: 61, kind: TierKindNeutral, rate: 0},
		{days: 75, kind: TierKindNeutral, rate: 0},
		{days: 90, kind: TierKindNeutral, rate: 0},
		{days: 91, kind: TierKindInterest, rate: 2},
		{days: 365, kind: TierKindInterest, rate: 2}, // open-ended tail keeps accruing
	}

	for _, tt := range tests {
		res := table.Resolve(tt.days)
		assert.Equal(t, tt.kind, res.Kind, "day %d", tt.days)
		assert.True(t, res.RatePercent.Equal(decimal.NewFromInt(tt.rate)), "day %d: got rate %s", tt.days, res.RatePercent)
	}
}

func TestResolveLabels(t *testing.T) {
	table := Default()

	assert.Equal(t, "10% Early Payment Discount", table.Resolve(10).Label)
	assert.Equal(t, "Standard Rate", table.Resolve(75).Label)
	assert.Equal(t, "2% Late Payment Interest", table.Resolve(100).Label)
}

func TestMaxDefinedDay(t *testing.T) {
	assert.Equal(t, 91, Default().MaxDefinedDay())

	bounded := Table{
		DiscountTiers: []Tier{
			{StartDay: 0, EndDay: 30, RatePercent: decimal.NewFromInt(10)},
		},
		InterestTiers: []Tier{
			{StartDay: 61, EndDay: 120, RatePercent: decimal.NewFromInt(2)},
		},
		MinPartialPaymentPercent: decimal.NewFromInt(5),
	}
	assert.Equal(t, 120, bounded.MaxDefinedDay())
}

func TestReplaceTableRequestRoundTrip(t *testing.T) {
	end := 30
	req := &ReplaceTableRequest{
		DiscountTiers: []TierPayload{
			{StartDay: 0, EndDay: &end, RatePercent: decimal.NewFromInt(10)},
		},
		InterestTiers: []TierPayload{
			{StartDay: 61, RatePercent: decimal.NewFromInt(2)}, // no end day = open-ended
		},
		MinPartialPaymentPercent: decimal.NewFromInt(5),
	}

	table := req.ToTable()
	require.NoError(t, table.Validate())
	assert.Equal(t, 30, table.DiscountTiers[0].EndDay)
	assert.Equal(t, OpenEnded, table.InterestTiers[0].EndDay)

	resp := table.ToResponse()
	require.NotNil(t, resp.DiscountTiers[0].EndDay)
	assert.Equal(t, 30, *resp.DiscountTiers[0].EndDay)
	assert.Nil(t, resp.InterestTiers[0].EndDay)
}
