package export

import (
	"bytes"
	"fmt"
	"strings"

	"backoffice/internal/models"

	"backoffice/pkg/format"
)

const receiptWidth = 42

// RenderReceipt renders a printable plain-text receipt for one trade, sized
// for the desk's thermal printer.
func RenderReceipt(exchange *models.Exchange, dilar *models.Dilar) []byte {
	var buf bytes.Buffer

	line := strings.Repeat("=", receiptWidth)
	thin := strings.Repeat("-", receiptWidth)

	fmt.Fprintln(&buf, line)
	fmt.Fprintln(&buf, center("CURRENCY EXCHANGE RECEIPT"))
	fmt.Fprintln(&buf, line)

	fmt.Fprintf(&buf, "Receipt No : %s\n", exchange.ID.String()[:8])
	fmt.Fprintf(&buf, "Date       : %s\n", format.FormatDate(exchange.Date))
	fmt.Fprintln(&buf, thin)

	if dilar != nil {
		fmt.Fprintf(&buf, "Dilar      : %s\n", dilar.TradeName)
		fmt.Fprintf(&buf, "Owner      : %s\n", dilar.OwnerName)
		fmt.Fprintf(&buf, "Contact    : %s\n", dilar.ContactNo)
	} else {
		fmt.Fprintf(&buf, "Customer   : %s\n", exchange.FullName)
		if exchange.MobileNumber != "" {
			fmt.Fprintf(&buf, "Mobile     : %s\n", exchange.MobileNumber)
		}
	}
	fmt.Fprintln(&buf, thin)

	fmt.Fprintf(&buf, "Type       : %s\n", exchange.Type)
	fmt.Fprintf(&buf, "Currency   : %s", exchange.CurrencyCode)
	if exchange.CurrencyName != "" {
		fmt.Fprintf(&buf, " (%s)", exchange.CurrencyName)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Rate       : %s BDT\n", exchange.ExchangeRate.String())
	fmt.Fprintf(&buf, "Foreign    : %s %s\n", exchange.ForeignAmount.String(), exchange.CurrencyCode)
	fmt.Fprintf(&buf, "Amount     : %s\n", format.FormatCurrency(exchange.AmountBDT, format.DefaultBDT))
	fmt.Fprintln(&buf, line)
	fmt.Fprintln(&buf, center("Thank you"))
	fmt.Fprintln(&buf, line)

	return buf.Bytes()
}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	pad := (receiptWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
