// Package format renders money and dates the way the back office displays
// them: Bengali taka symbol, thousand grouping, dd MMM yyyy dates.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyOptions controls how an amount is rendered
type CurrencyOptions struct {
	Symbol   string
	Position string // "left" or "right"; the older "prefix"/"suffix" names still work
	Decimals int32
}

// DefaultBDT renders whole-taka amounts with a leading taka sign
var DefaultBDT = CurrencyOptions{
	Symbol:   "৳",
	Position: "left",
	Decimals: 0,
}

// FormatCurrency renders an amount with thousand grouping and the configured
// symbol, e.g. "৳1,000". Negative amounts keep the sign ahead of the symbol.
func FormatCurrency(amount decimal.Decimal, opts CurrencyOptions) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(opts.Decimals)

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	grouped := groupThousands(intPart)

	after := opts.Position == "right" || opts.Position == "suffix"

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if !after {
		b.WriteString(opts.Symbol)
	}
	b.WriteString(grouped)
	b.WriteString(fracPart)
	if after {
		b.WriteString(opts.Symbol)
	}
	return b.String()
}

// FormatDate renders a date as "02 Jan 2006"
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// FormatDateTime renders a timestamp as "02 Jan 2006 15:04"
func FormatDateTime(t time.Time) string {
	return t.Format("02 Jan 2006 15:04")
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
