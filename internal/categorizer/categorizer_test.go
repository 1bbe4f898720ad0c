package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/rules"
)

func newTestCategorizer() *Categorizer {
	return New(rules.Default(), &logging.MockLogger{})
}

func TestSuggestCategory(t *testing.T) {
	c := newTestCategorizer()

	testCases := []struct {
		name        string
		store       string
		description string
		typeHint    string
		expected    string
	}{
		{name: "Grocery store", store: "Target", expected: "Groceries"},
		{name: "Fast food", store: "McDonald's", expected: "Dining"},
		{name: "Coffee shop", store: "Starbucks", expected: "Dining"},
		{name: "Gas station", store: "Shell", expected: "Gas & Auto"},
		{name: "Costco gas beats Costco groceries", store: "Costco Gas", expected: "Gas & Auto"},
		{name: "Short gas station name", store: "BP", expected: "Gas & Auto"},
		{name: "Streaming service", store: "Netflix", expected: "Subscriptions"},
		{name: "Online shopping", store: "Amazon", expected: "Shopping"},
		{name: "Rideshare", store: "Uber", expected: "Travel"},
		{name: "Case insensitive store match", store: "WALMART SUPERCENTER", expected: "Groceries"},

		{name: "Interest from description", description: "Interest earned", expected: "Interest"},
		{name: "Salary from type hint", typeHint: "Direct Deposit", expected: "Salary"},
		{name: "Rent from description", description: "Monthly rent payment", expected: "Rent"},
		{name: "Utilities from description", description: "Electric bill autopay", expected: "Utilities"},
		{name: "Student loan servicer", description: "NAVIENT payment", expected: "Student Loan"},

		{name: "Store rule beats keyword rule", store: "Starbucks", description: "interest charge", expected: "Dining"},

		{name: "No match falls back to default", store: "Mystery Shop", expected: "Other Expense"},
		{name: "All empty falls back to default", expected: "Other Expense"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.SuggestCategory(tc.store, tc.description, tc.typeHint)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSuggestCategoryIsTotal(t *testing.T) {
	c := newTestCategorizer()

	// Whatever the inputs, the suggestion is a member of the canonical set.
	inputs := [][3]string{
		{"", "", ""},
		{"ZZZZZ", "qqqq", "xxxx"},
		{"Target", "", ""},
		{"", "interest", ""},
	}
	for _, in := range inputs {
		got := c.SuggestCategory(in[0], in[1], in[2])
		assert.NotEmpty(t, got)
		assert.True(t, c.Rules().IsCanonical(got), "suggestion %q is not canonical", got)
	}
}

func TestNormalizeCategory(t *testing.T) {
	c := newTestCategorizer()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty maps to default", input: "", expected: "Other Expense"},
		{name: "Whitespace maps to default", input: "   ", expected: "Other Expense"},
		{name: "Canonical passes through", input: "Groceries", expected: "Groceries"},
		{name: "Case corrected", input: "groceries", expected: "Groceries"},
		{name: "Legacy synonym", input: "Dining Out", expected: "Dining"},
		{name: "Synonym case insensitive", input: "FUN MONEY", expected: "Entertainment"},
		{name: "Golf maps to recreation", input: "golf", expected: "Recreation"},
		{name: "Grad school maps to education", input: "Grad School", expected: "Education"},
		{name: "Unknown passes through title cased", input: "pet supplies", expected: "Pet Supplies"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.NormalizeCategory(tc.input))
		})
	}
}

func TestNormalizeCategoryIdempotent(t *testing.T) {
	c := newTestCategorizer()
	for _, input := range []string{"Dining Out", "groceries", "pet supplies", "", "Other Income"} {
		once := c.NormalizeCategory(input)
		assert.Equal(t, once, c.NormalizeCategory(once), "normalization of %q is not idempotent", input)
	}
}

func TestIsValidCategory(t *testing.T) {
	c := newTestCategorizer()

	assert.True(t, c.IsValidCategory("Groceries"))
	assert.True(t, c.IsValidCategory("groceries"))
	assert.True(t, c.IsValidCategory("Dining Out")) // synonym resolves
	assert.True(t, c.IsValidCategory("Other Income"))

	assert.False(t, c.IsValidCategory(""))
	assert.False(t, c.IsValidCategory("   "))
	// Title-case pass-through is not membership.
	assert.False(t, c.IsValidCategory("Pet Supplies"))
}

func TestTransactionType(t *testing.T) {
	c := newTestCategorizer()

	testCases := []struct {
		category string
		expected string
	}{
		{"Salary", models.TypeIncome},
		{"Interest", models.TypeIncome},
		{"Refund", models.TypeIncome},
		{"other income", models.TypeIncome},
		{"Groceries", models.TypeExpense},
		{"Dining", models.TypeExpense},
		{"", models.TypeExpense},
		{"Unknown Category", models.TypeExpense},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, c.TransactionType(tc.category), "category %q", tc.category)
	}
}

func TestClassifierOutputsRoundTrip(t *testing.T) {
	c := newTestCategorizer()

	// Every category the classifier can produce must validate and normalize
	// to itself.
	for _, store := range []string{"Target", "Starbucks", "Netflix", "Shell", "Unknown Merchant"} {
		category := c.SuggestCategory(store, "", "")
		assert.True(t, c.IsValidCategory(category))
		assert.Equal(t, category, c.NormalizeCategory(category))
	}
}
