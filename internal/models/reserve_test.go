package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBuy_FirstPurchaseSetsAverage(t *testing.T) {
	r := Reserve{CurrencyCode: "USD"}

	r.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(12000))

	assert.True(t, r.TotalBought.Equal(decimal.NewFromInt(100)))
	assert.True(t, r.WeightedAvgPurchasePrice.Equal(decimal.NewFromInt(120)))
	assert.True(t, r.CurrentReserveValue.Equal(decimal.NewFromInt(12000)))
}

func TestApplyBuy_AverageMovesTowardNewRate(t *testing.T) {
	r := Reserve{CurrencyCode: "USD"}
	r.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(12000)) // 100 at 120
	r.ApplyBuy(decimal.NewFromInt(50), decimal.NewFromInt(6500))   // 50 at 130

	// (100*120 + 50*130) / 150 = 123.333333 at 6 places
	assert.Equal(t, "123.333333", r.WeightedAvgPurchasePrice.String())
	assert.True(t, r.Held().Equal(decimal.NewFromInt(150)))
}

func TestApplySell_RealizedAgainstAverageCost(t *testing.T) {
	r := Reserve{CurrencyCode: "USD"}
	r.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(12000))

	realized, err := r.ApplySell(decimal.NewFromInt(40), decimal.NewFromInt(125))
	require.NoError(t, err)

	// 40 * (125 - 120) = 200
	assert.True(t, realized.Equal(decimal.NewFromInt(200)))
	assert.True(t, r.TotalSold.Equal(decimal.NewFromInt(40)))
	assert.True(t, r.RealizedProfitLoss.Equal(decimal.NewFromInt(200)))
	// 60 left at cost 120
	assert.True(t, r.CurrentReserveValue.Equal(decimal.NewFromInt(7200)))
}

func TestApplySell_LossWhenRateBelowAverage(t *testing.T) {
	r := Reserve{CurrencyCode: "USD"}
	r.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(12000))

	realized, err := r.ApplySell(decimal.NewFromInt(10), decimal.NewFromInt(118))
	require.NoError(t, err)

	assert.True(t, realized.Equal(decimal.NewFromInt(-20)))
	assert.True(t, r.RealizedProfitLoss.Equal(decimal.NewFromInt(-20)))
}

func TestApplySell_BeyondHeldRejected(t *testing.T) {
	r := Reserve{CurrencyCode: "USD"}
	r.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(12000))

	_, err := r.ApplySell(decimal.NewFromInt(150), decimal.NewFromInt(125))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// A rejected sell leaves the reserve untouched
	assert.True(t, r.TotalSold.IsZero())
	assert.True(t, r.RealizedProfitLoss.IsZero())
}

func TestApplySell_SellingEverythingEmptiesReserveValue(t *testing.T) {
	r := Reserve{CurrencyCode: "USD"}
	r.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(12000))

	_, err := r.ApplySell(decimal.NewFromInt(100), decimal.NewFromInt(125))
	require.NoError(t, err)

	assert.True(t, r.Held().IsZero())
	assert.True(t, r.CurrentReserveValue.IsZero())
}

func TestApplyBuy_AfterSellOutAverageResetsToNewRate(t *testing.T) {
	r := Reserve{CurrencyCode: "USD"}
	r.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(12000))
	_, err := r.ApplySell(decimal.NewFromInt(100), decimal.NewFromInt(125))
	require.NoError(t, err)

	// With nothing held, the next buy fully determines the average
	r.ApplyBuy(decimal.NewFromInt(50), decimal.NewFromInt(6500))
	assert.True(t, r.WeightedAvgPurchasePrice.Equal(decimal.NewFromInt(130)))
}
