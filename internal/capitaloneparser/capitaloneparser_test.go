package capitaloneparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/rules"
)

const header = "Transaction Date,Posted Date,Card No.,Description,Category,Debit,Credit\n"

func newTestParser() *Parser {
	ruleset := rules.Default()
	logger := &logging.MockLogger{}
	return New(normalizer.New(ruleset, logger), categorizer.New(ruleset, logger), logger)
}

func TestParseStatement(t *testing.T) {
	p := newTestParser()

	content := header +
		"01/10/2024,01/11/2024,1234,TARGET 00012345,Merchandise,52.10,\n" +
		"01/12/2024,01/13/2024,1234,REFUND NETFLIX.COM,Internet,,15.99\n" +
		"01/14/2024,01/15/2024,1234,CAPITAL ONE AUTOPAY PYMT,Payment/Credit,,250.00\n"

	result, err := p.Parse(content)
	require.NoError(t, err)
	assert.Equal(t, models.FormatCapitalOne, result.Format)
	require.Len(t, result.Transactions, 2)
	require.Len(t, result.Skipped, 1)

	target := result.Transactions[0]
	assert.Equal(t, "Target", target.Store)
	assert.Equal(t, models.TypeExpense, target.Type)
	assert.True(t, target.Amount.Equal(decimal.RequireFromString("52.10")))
	assert.Equal(t, "Groceries", target.SuggestedCategory)
	assert.Equal(t, "Merchandise", target.OriginalType)

	refund := result.Transactions[1]
	assert.Equal(t, models.TypeIncome, refund.Type)
	assert.True(t, refund.Amount.Equal(decimal.RequireFromString("15.99")))

	// The card payment transfer is excluded, with a reason.
	skipped := result.Skipped[0]
	assert.Equal(t, 4, skipped.Line)
	assert.Contains(t, skipped.Reason, "card payment transfer")
}

func TestSelfPaymentDetection(t *testing.T) {
	testCases := []struct {
		description string
		expected    bool
	}{
		{"CAPITAL ONE AUTOPAY PYMT", true},
		{"CAPITAL ONE MOBILE PYMT", true},
		{"Capital One Online Pymt", true},
		{"CAPITAL ONE ONLINE PAYMENT", true},
		// Payments to other parties are real transactions.
		{"ELECTRIC CO AUTOPAY", false},
		{"RENT PAYMENT", false},
		{"CAPITAL ONE CAFE", false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, isSelfPayment(tc.description))
		})
	}
}

func TestDebitWinsWhenBothColumnsPopulated(t *testing.T) {
	p := newTestParser()

	content := header +
		"01/10/2024,01/11/2024,1234,ODD ROW,Merchandise,10.00,5.00\n"

	result, err := p.Parse(content)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)

	tx := result.Transactions[0]
	assert.Equal(t, models.TypeExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(10)))
}

func TestNeitherColumnPopulatedIsSkipped(t *testing.T) {
	p := newTestParser()

	content := header +
		"01/10/2024,01/11/2024,1234,EMPTY ROW,Merchandise,,\n"

	result, err := p.Parse(content)
	require.NoError(t, err)
	assert.Empty(t, result.Transactions)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0].Reason, "no debit or credit amount")
}

func TestMissingCategoryGetsDefaultOriginalType(t *testing.T) {
	p := newTestParser()

	content := header +
		"01/10/2024,01/11/2024,1234,SOME STORE,,20.00,\n" +
		"01/12/2024,01/13/2024,1234,STORE REFUND,,,8.00\n"

	result, err := p.Parse(content)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "Purchase", result.Transactions[0].OriginalType)
	assert.Equal(t, "Payment", result.Transactions[1].OriginalType)
}
