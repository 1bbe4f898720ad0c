package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.yaml"), &logging.MockLogger{})
	ruleset, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "Other Expense", ruleset.DefaultCategory)
	assert.Contains(t, ruleset.ExpenseCategories, "Dining")
	assert.Contains(t, ruleset.IncomeCategories, "Salary")
	assert.True(t, ruleset.LargePurchaseAmount.Equal(decimal.NewFromInt(500)))
}

func TestLoadOverridesTablesWholesale(t *testing.T) {
	path := writeRulesFile(t, `
expense_categories:
  - Food
  - Bills
default_category: Bills
store_patterns:
  - pattern: MIGROS
    name: Migros
large_purchase_amount: "250.00"
`)
	store := NewStore(path, &logging.MockLogger{})
	ruleset, err := store.Load()
	require.NoError(t, err)

	// Overridden tables are replaced, not merged.
	assert.Equal(t, []string{"Food", "Bills"}, ruleset.ExpenseCategories)
	assert.Equal(t, "Bills", ruleset.DefaultCategory)
	require.Len(t, ruleset.StorePatterns, 1)

	// Patterns are lowercased on load.
	assert.Equal(t, "migros", ruleset.StorePatterns[0].Pattern)
	assert.Equal(t, "Migros", ruleset.StorePatterns[0].Name)

	assert.True(t, ruleset.LargePurchaseAmount.Equal(decimal.RequireFromString("250.00")))

	// Tables the file does not mention keep their defaults.
	assert.Contains(t, ruleset.IncomeCategories, "Salary")
	assert.NotEmpty(t, ruleset.StoreCategories)
}

func TestLoadNormalizesKeys(t *testing.T) {
	path := writeRulesFile(t, `
store_exact:
  AMZN: Amazon
category_synonyms:
  Dining OUT: Dining
`)
	store := NewStore(path, &logging.MockLogger{})
	ruleset, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "Amazon", ruleset.StoreExact["amzn"])
	assert.Equal(t, "Dining", ruleset.CategorySynonyms["dining out"])
}

func TestLoadBadThreshold(t *testing.T) {
	path := writeRulesFile(t, `large_purchase_amount: "lots"`)
	store := NewStore(path, &logging.MockLogger{})
	_, err := store.Load()
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeRulesFile(t, "store_patterns: [unclosed")
	store := NewStore(path, &logging.MockLogger{})
	_, err := store.Load()
	assert.Error(t, err)
}

func TestRulesetMembership(t *testing.T) {
	r := Default()

	assert.True(t, r.IsCanonical("Groceries"))
	assert.True(t, r.IsCanonical("Salary"))
	assert.False(t, r.IsCanonical("groceries"))
	assert.False(t, r.IsCanonical("Nope"))

	assert.True(t, r.IsIncomeCategory("Interest"))
	assert.False(t, r.IsIncomeCategory("Dining"))

	casing, ok := r.CanonicalCasing("gas & auto")
	assert.True(t, ok)
	assert.Equal(t, "Gas & Auto", casing)
	_, ok = r.CanonicalCasing("not a category")
	assert.False(t, ok)

	all := r.AllCategories()
	assert.Len(t, all, len(r.ExpenseCategories)+len(r.IncomeCategories))
	assert.Contains(t, all, "Other Income")
}
