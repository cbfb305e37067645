package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "bankAccounts", BuildKey("bankAccounts"))
	assert.Equal(t, "bankAccounts:abc", BuildKey("bankAccounts", "abc"))
	assert.Equal(t, "bankAccounts:abc:summary", BuildKey("bankAccounts", "abc", "summary"))

	// Empty parts collapse so optional segments do not change the key
	assert.Equal(t, BuildKey("bankAccounts"), BuildKey("bankAccounts", ""))
	assert.Equal(t, BuildKey("bankAccounts", "abc"), BuildKey("bankAccounts", "", "abc"))
}

func TestBuildFilterKey_SortedAndStable(t *testing.T) {
	a := BuildFilterKey("exchanges", map[string]string{"type": "Buy", "currency_code": "USD"})
	b := BuildFilterKey("exchanges", map[string]string{"currency_code": "USD", "type": "Buy"})

	assert.Equal(t, a, b)
	assert.Equal(t, "exchanges:currency_code=USD:type=Buy", a)
}

func TestBuildFilterKey_EmptyValuesOmitted(t *testing.T) {
	key := BuildFilterKey("exchanges", map[string]string{"type": "", "search": ""})
	assert.Equal(t, "exchanges", key)

	key = BuildFilterKey("exchanges", nil)
	assert.Equal(t, "exchanges", key)
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, ValidateKey("exchanges:type=Buy"))

	assert.ErrorIs(t, ValidateKey(""), ErrInvalidKey)
	assert.ErrorIs(t, ValidateKey(" padded"), ErrInvalidKey)
	assert.ErrorIs(t, ValidateKey("tab\there"), ErrInvalidKey)
	assert.ErrorIs(t, ValidateKey(strings.Repeat("x", 251)), ErrInvalidKey)
}

func TestHasKeyPrefix(t *testing.T) {
	assert.True(t, hasKeyPrefix("exchanges", "exchanges"))
	assert.True(t, hasKeyPrefix("exchanges:abc", "exchanges"))
	assert.False(t, hasKeyPrefix("exchangesOther", "exchanges"))
}
