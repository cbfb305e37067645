package export

import (
	"testing"
	"time"

	"backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleBuy() *models.Exchange {
	return &models.Exchange{
		ID:            uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000"),
		Date:          time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
		FullName:      "Abdul Karim",
		MobileNumber:  "01712345678",
		Type:          models.ExchangeTypeBuy,
		CurrencyCode:  "USD",
		CurrencyName:  "US Dollar",
		ExchangeRate:  decimal.NewFromInt(120),
		Quantity:      decimal.NewFromInt(12000),
		AmountBDT:     decimal.NewFromInt(12000),
		ForeignAmount: decimal.NewFromInt(100),
	}
}

func TestRenderReceipt_WalkInCustomer(t *testing.T) {
	out := string(RenderReceipt(sampleBuy(), nil))

	assert.Contains(t, out, "CURRENCY EXCHANGE RECEIPT")
	assert.Contains(t, out, "Receipt No : a1b2c3d4")
	assert.Contains(t, out, "Date       : 30 Aug 2026")
	assert.Contains(t, out, "Customer   : Abdul Karim")
	assert.Contains(t, out, "Mobile     : 01712345678")
	assert.Contains(t, out, "Currency   : USD (US Dollar)")
	assert.Contains(t, out, "Foreign    : 100 USD")
	assert.Contains(t, out, "৳12,000")
}

func TestRenderReceipt_DilarShownInsteadOfCustomer(t *testing.T) {
	dilar := &models.Dilar{
		OwnerName: "Karim",
		ContactNo: "01898765432",
		TradeName: "Karim Traders",
	}

	out := string(RenderReceipt(sampleBuy(), dilar))

	assert.Contains(t, out, "Dilar      : Karim Traders")
	assert.Contains(t, out, "Owner      : Karim")
	assert.NotContains(t, out, "Customer   :")
}

func TestRenderReceipt_NoMobileLineWhenEmpty(t *testing.T) {
	exchange := sampleBuy()
	exchange.MobileNumber = ""

	out := string(RenderReceipt(exchange, nil))
	assert.NotContains(t, out, "Mobile")
}
