package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/rules"
)

func newTestFactory() *Factory {
	ruleset := rules.Default()
	logger := &logging.MockLogger{}
	return NewFactory(normalizer.New(ruleset, logger), categorizer.New(ruleset, logger), logger)
}

func TestFactoryGet(t *testing.T) {
	f := newTestFactory()

	p, err := f.Get(models.FormatSofi)
	require.NoError(t, err)
	assert.Equal(t, models.FormatSofi, p.Format())

	p, err = f.Get(models.FormatCapitalOne)
	require.NoError(t, err)
	assert.Equal(t, models.FormatCapitalOne, p.Format())

	_, err = f.Get("quicken")
	assert.Error(t, err)
}

func TestFactoryGetGeneric(t *testing.T) {
	f := newTestFactory()
	p := f.GetGeneric(models.ColumnMapping{DateColumn: "Date", StoreColumn: "Merchant", AmountColumn: "Amount"})
	assert.Equal(t, models.FormatGeneric, p.Format())
}

func TestParseStatementAutoDetect(t *testing.T) {
	f := newTestFactory()

	content := sofiHeader +
		"01/15/2024,STARBUCKS #1234,Debit Card,-4.50,995.50,Posted\n"

	result, err := f.ParseStatement(content, models.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, models.FormatSofi, result.Format)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Starbucks", result.Transactions[0].Store)
}

func TestParseStatementExplicitFormat(t *testing.T) {
	f := newTestFactory()

	content := capitalOneHeader +
		"01/10/2024,01/11/2024,1234,TARGET 00012345,Merchandise,52.10,\n"

	result, err := f.ParseStatement(content, models.FormatCapitalOne)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, models.TypeExpense, result.Transactions[0].Type)
}

func TestParseStatementUnknownHeader(t *testing.T) {
	f := newTestFactory()
	_, err := f.ParseStatement("Foo,Bar\n1,2\n", models.FormatAuto)
	assert.Error(t, err)
}
