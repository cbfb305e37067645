package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeAmounts_Buy(t *testing.T) {
	// Paying 12,000 BDT at 120 per USD buys 100 USD
	ex := Exchange{
		Type:         ExchangeTypeBuy,
		ExchangeRate: decimal.NewFromInt(120),
		Quantity:     decimal.NewFromInt(12000),
	}
	ex.ComputeAmounts()

	assert.True(t, ex.AmountBDT.Equal(decimal.NewFromInt(12000)))
	assert.True(t, ex.ForeignAmount.Equal(decimal.NewFromInt(100)))
}

func TestComputeAmounts_BuyRoundsForeignTo4Places(t *testing.T) {
	// 10,000 / 121.50 = 82.3045267... → 82.3045
	ex := Exchange{
		Type:         ExchangeTypeBuy,
		ExchangeRate: decimal.RequireFromString("121.50"),
		Quantity:     decimal.NewFromInt(10000),
	}
	ex.ComputeAmounts()

	assert.Equal(t, "82.3045", ex.ForeignAmount.String())
}

func TestComputeAmounts_Sell(t *testing.T) {
	// Selling 80 USD at 125.25 takes in 10,020 BDT
	ex := Exchange{
		Type:         ExchangeTypeSell,
		ExchangeRate: decimal.RequireFromString("125.25"),
		Quantity:     decimal.NewFromInt(80),
	}
	ex.ComputeAmounts()

	assert.True(t, ex.ForeignAmount.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "10020", ex.AmountBDT.String())
}

func TestComputeAmounts_SellRoundsBDTTo2Places(t *testing.T) {
	// 33.33 * 121.555 = 4051.42815 → 4051.43
	ex := Exchange{
		Type:         ExchangeTypeSell,
		ExchangeRate: decimal.RequireFromString("121.555"),
		Quantity:     decimal.RequireFromString("33.33"),
	}
	ex.ComputeAmounts()

	assert.Equal(t, "4051.43", ex.AmountBDT.String())
}

func TestComputeAmounts_NonPositiveInputsLeaveAmountsAlone(t *testing.T) {
	ex := Exchange{
		Type:         ExchangeTypeBuy,
		ExchangeRate: decimal.Zero,
		Quantity:     decimal.NewFromInt(100),
	}
	ex.ComputeAmounts()

	assert.True(t, ex.AmountBDT.IsZero())
	assert.True(t, ex.ForeignAmount.IsZero())
}

func TestExchangeValidate(t *testing.T) {
	valid := Exchange{
		FullName:     "Abdul Karim",
		Type:         ExchangeTypeBuy,
		CurrencyCode: "USD",
		ExchangeRate: decimal.NewFromInt(120),
		Quantity:     decimal.NewFromInt(12000),
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "buy"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidExchangeType)

	badCurrency := valid
	badCurrency.CurrencyCode = "usd"
	assert.ErrorIs(t, badCurrency.Validate(), ErrInvalidCurrencyCode)

	badRate := valid
	badRate.ExchangeRate = decimal.Zero
	assert.ErrorIs(t, badRate.Validate(), ErrInvalidRate)

	badQuantity := valid
	badQuantity.Quantity = decimal.NewFromInt(-1)
	assert.ErrorIs(t, badQuantity.Validate(), ErrInvalidQuantity)
}

func TestIsBuy(t *testing.T) {
	buy := Exchange{Type: ExchangeTypeBuy}
	sell := Exchange{Type: ExchangeTypeSell}
	assert.True(t, buy.IsBuy())
	assert.False(t, sell.IsBuy())
}
