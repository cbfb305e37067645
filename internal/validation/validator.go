package validation

import (
	"reflect"
	"strings"

	"backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_category", validateAccountCategory)
	_ = v.RegisterValidation("bd_mobile", validateBDMobile)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("exchange_type", validateExchangeType)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateAccountCategory checks the account type against the fixed category set
func validateAccountCategory(fl validator.FieldLevel) bool {
	return models.IsValidAccountCategory(fl.Field().String())
}

// validateBDMobile validates a Bangladeshi mobile number, with or without the
// country prefix
func validateBDMobile(fl validator.FieldLevel) bool {
	return models.IsValidBDMobile(fl.Field().String())
}

// validateCurrencyCode checks for a 3-letter uppercase ISO currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsValidCurrencyCode(fl.Field().String())
}

// validateExchangeType accepts only Buy or Sell
func validateExchangeType(fl validator.FieldLevel) bool {
	return models.IsValidExchangeType(fl.Field().String())
}

// validatePositiveAmount parses a string amount and checks it is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}
