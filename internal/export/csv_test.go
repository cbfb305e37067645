package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStatement() *models.AccountStatement {
	jan5 := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	jan12 := time.Date(2026, 1, 12, 14, 0, 0, 0, time.UTC)

	return &models.AccountStatement{
		AccountID:      uuid.New(),
		AccountNumber:  "1101-2233445",
		BankName:       "City Bank",
		FromDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ToDate:         time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		OpeningBalance: decimal.NewFromInt(10000),
		ClosingBalance: decimal.NewFromInt(11500),
		GeneratedAt:    time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		Transactions: []models.Transaction{
			{
				TransactionType: models.TransactionTypeCredit,
				Amount:          decimal.NewFromInt(2000),
				BalanceAfter:    decimal.NewFromInt(12000),
				Description:     "Cash deposit",
				Date:            jan5,
			},
			{
				TransactionType: models.TransactionTypeDebit,
				Amount:          decimal.NewFromInt(500),
				BalanceAfter:    decimal.NewFromInt(11500),
				Description:     "Bank charge",
				Reference:       "CHG-44",
				Date:            jan12,
			},
		},
	}
}

func TestRenderStatementCSV(t *testing.T) {
	out, err := RenderStatementCSV(sampleStatement())
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(out)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// 8 metadata rows (the blank separator line is skipped by the reader),
	// the column header, then 2 transactions
	require.Len(t, records, 11)

	assert.Equal(t, []string{"Account Statement"}, records[0])
	assert.Equal(t, []string{"Bank", "City Bank"}, records[1])
	assert.Equal(t, []string{"Opening Balance", "10000.00"}, records[5])
	assert.Equal(t, []string{"Date", "Type", "Description", "Reference", "Amount", "Balance After"}, records[8])
}

func TestRenderStatementCSV_OutflowsAreNegative(t *testing.T) {
	out, err := RenderStatementCSV(sampleStatement())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "2000.00")
	assert.Contains(t, text, "-500.00")
}

func TestRenderStatementCSV_EmptyWindow(t *testing.T) {
	statement := sampleStatement()
	statement.Transactions = nil

	out, err := RenderStatementCSV(statement)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(out)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	// Header rows only, no transaction rows
	assert.Len(t, records, 9)
}
