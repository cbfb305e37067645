// Package export renders account statements and trade receipts into
// downloadable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"backoffice/internal/models"
)

const csvDateLayout = "2006-01-02 15:04:05"

// RenderStatementCSV renders a statement as CSV. The header block carries the
// account and window metadata so the file is self-describing when saved.
func RenderStatementCSV(statement *models.AccountStatement) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	meta := [][]string{
		{"Account Statement"},
		{"Bank", statement.BankName},
		{"Account Number", statement.AccountNumber},
		{"From", statement.FromDate.Format("2006-01-02")},
		{"To", statement.ToDate.Format("2006-01-02")},
		{"Opening Balance", statement.OpeningBalance.StringFixed(2)},
		{"Closing Balance", statement.ClosingBalance.StringFixed(2)},
		{"Generated At", statement.GeneratedAt.Format(csvDateLayout)},
		{},
	}
	for _, row := range meta {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write statement header: %w", err)
		}
	}

	header := []string{"Date", "Type", "Description", "Reference", "Amount", "Balance After"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write column header: %w", err)
	}

	for _, tx := range statement.Transactions {
		amount := tx.Amount.StringFixed(2)
		if !tx.IsInflow() {
			amount = "-" + amount
		}

		row := []string{
			tx.Date.Format(csvDateLayout),
			tx.TransactionType,
			tx.Description,
			tx.Reference,
			amount,
			tx.BalanceAfter.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write transaction row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush statement: %w", err)
	}

	return buf.Bytes(), nil
}
