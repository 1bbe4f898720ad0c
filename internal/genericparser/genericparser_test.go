package genericparser

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/parsererror"
	"github.com/gmhollar5/PersonalFinanceApp/internal/rules"
)

func newTestParser(mapping models.ColumnMapping) *Parser {
	ruleset := rules.Default()
	logger := &logging.MockLogger{}
	return New(mapping, normalizer.New(ruleset, logger), categorizer.New(ruleset, logger), logger)
}

func TestParseSingleAmountColumn(t *testing.T) {
	p := newTestParser(models.ColumnMapping{
		DateColumn:   "Posted",
		StoreColumn:  "Merchant",
		AmountColumn: "Value",
	})

	content := "Posted,Merchant,Value\n" +
		"01/15/2024,WHOLE FOODS MKT,-83.12\n" +
		"01/16/2024,ACME PAYROLL,2100.00\n"

	result, err := p.Parse(content)
	require.NoError(t, err)
	assert.Equal(t, models.FormatGeneric, result.Format)
	require.Len(t, result.Transactions, 2)

	groceries := result.Transactions[0]
	assert.Equal(t, "Whole Foods", groceries.Store)
	assert.Equal(t, models.TypeExpense, groceries.Type)
	assert.True(t, groceries.Amount.Equal(decimal.RequireFromString("83.12")))
	assert.Equal(t, "Groceries", groceries.SuggestedCategory)

	income := result.Transactions[1]
	assert.Equal(t, models.TypeIncome, income.Type)
	assert.True(t, income.Amount.Equal(decimal.NewFromInt(2100)))
}

func TestParseDebitCreditColumns(t *testing.T) {
	p := newTestParser(models.ColumnMapping{
		DateColumn:     "Date",
		StoreColumn:    "Payee",
		UseDebitCredit: true,
		DebitColumn:    "Withdrawal",
		CreditColumn:   "Deposit",
	})

	content := "Date,Payee,Withdrawal,Deposit\n" +
		"01/15/2024,SHELL OIL 1234,45.00,\n" +
		"01/16/2024,TAX REFUND,,300.00\n" +
		"01/17/2024,BOTH COLUMNS,12.00,6.00\n" +
		"01/18/2024,NEITHER COLUMN,,\n"

	result, err := p.Parse(content)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 3)
	require.Len(t, result.Skipped, 1)

	assert.Equal(t, models.TypeExpense, result.Transactions[0].Type)
	assert.Equal(t, "Gas & Auto", result.Transactions[0].SuggestedCategory)
	assert.Equal(t, models.TypeIncome, result.Transactions[1].Type)

	// Debit wins when both columns carry a value.
	both := result.Transactions[2]
	assert.Equal(t, models.TypeExpense, both.Type)
	assert.True(t, both.Amount.Equal(decimal.NewFromInt(12)))

	assert.Equal(t, 5, result.Skipped[0].Line)
}

func TestParseFallsBackToDescriptionColumn(t *testing.T) {
	p := newTestParser(models.ColumnMapping{
		DateColumn:        "Date",
		StoreColumn:       "Store",
		DescriptionColumn: "Memo",
		AmountColumn:      "Amount",
	})

	content := "Date,Store,Memo,Amount\n" +
		"01/15/2024,,NETFLIX MONTHLY,-15.99\n"

	result, err := p.Parse(content)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Netflix", result.Transactions[0].Store)
}

func TestParseMissingMappedColumns(t *testing.T) {
	testCases := []struct {
		name    string
		mapping models.ColumnMapping
		header  string
	}{
		{
			name:    "Missing date column",
			mapping: models.ColumnMapping{DateColumn: "Date", StoreColumn: "Store", AmountColumn: "Amount"},
			header:  "Store,Amount\n",
		},
		{
			name:    "Missing store and description columns",
			mapping: models.ColumnMapping{DateColumn: "Date", StoreColumn: "Store", AmountColumn: "Amount"},
			header:  "Date,Amount\n",
		},
		{
			name:    "Missing amount column",
			mapping: models.ColumnMapping{DateColumn: "Date", StoreColumn: "Store", AmountColumn: "Amount"},
			header:  "Date,Store\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestParser(tc.mapping)
			_, err := p.Parse(tc.header)
			var extraction *parsererror.DataExtractionError
			assert.True(t, errors.As(err, &extraction), "expected DataExtractionError, got %v", err)
		})
	}
}

func TestParseSkipsRowLevelProblems(t *testing.T) {
	p := newTestParser(models.ColumnMapping{
		DateColumn:   "Date",
		StoreColumn:  "Store",
		AmountColumn: "Amount",
	})

	content := "Date,Store,Amount\n" +
		"bad-date,STORE,-5.00\n" +
		"01/15/2024,,\n" +
		"01/16/2024,GOOD STORE,-5.00\n"

	result, err := p.Parse(content)
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 1)
	assert.Len(t, result.Skipped, 2)
}
