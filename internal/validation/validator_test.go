package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type accountPayload struct {
	AccountType string `validate:"required,account_category"`
}

type dilarPayload struct {
	ContactNo string `validate:"required,bd_mobile"`
}

type exchangePayload struct {
	Type         string `validate:"required,exchange_type"`
	CurrencyCode string `validate:"required,currency_code"`
	Quantity     string `validate:"required,positive_amount"`
}

func TestAccountCategoryRule(t *testing.T) {
	v := NewValidator().GetValidate()

	valid := []string{"cash", "bank", "mobile_banking", "check", "others"}
	for _, category := range valid {
		assert.NoError(t, v.Struct(accountPayload{AccountType: category}), category)
	}

	invalid := []string{"savings", "CASH", "mobile banking", ""}
	for _, category := range invalid {
		assert.Error(t, v.Struct(accountPayload{AccountType: category}), category)
	}
}

func TestBDMobileRule(t *testing.T) {
	v := NewValidator().GetValidate()

	valid := []string{"01712345678", "+8801812345678", "8801912345678", "01313456789"}
	for _, number := range valid {
		assert.NoError(t, v.Struct(dilarPayload{ContactNo: number}), number)
	}

	invalid := []string{"01212345678", "0171234567", "017123456789", "2015551234"}
	for _, number := range invalid {
		assert.Error(t, v.Struct(dilarPayload{ContactNo: number}), number)
	}
}

func TestExchangeRules(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(exchangePayload{Type: "Buy", CurrencyCode: "USD", Quantity: "1000"}))
	assert.NoError(t, v.Struct(exchangePayload{Type: "Sell", CurrencyCode: "EUR", Quantity: "0.5"}))

	assert.Error(t, v.Struct(exchangePayload{Type: "buy", CurrencyCode: "USD", Quantity: "1000"}))
	assert.Error(t, v.Struct(exchangePayload{Type: "Buy", CurrencyCode: "usd", Quantity: "1000"}))
	assert.Error(t, v.Struct(exchangePayload{Type: "Buy", CurrencyCode: "USDT", Quantity: "1000"}))
	assert.Error(t, v.Struct(exchangePayload{Type: "Buy", CurrencyCode: "USD", Quantity: "0"}))
	assert.Error(t, v.Struct(exchangePayload{Type: "Buy", CurrencyCode: "USD", Quantity: "abc"}))
}
