// Package categorizer assigns canonical categories to transactions using
// ordered rule passes: store-based rules first, then keyword rules over the
// description and bank type hint, then a fallback. It also normalizes
// free-form category strings to the closed canonical set.
package categorizer

import (
	"strings"

	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/rules"

	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

// Categorizer classifies and normalizes transaction categories using the
// injected rule tables. It is stateless after construction and safe for
// concurrent use.
type Categorizer struct {
	rules  *rules.Ruleset
	logger logging.Logger
}

// New creates a Categorizer over the given ruleset.
func New(ruleset *rules.Ruleset, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{rules: ruleset, logger: logger}
}

// SuggestCategory returns the best-guess category for a transaction. It is a
// total function: when no rule matches it returns the default category, so
// the result is never empty and always a member of the canonical set.
//
// Store rules are checked before keyword rules because merchant identity is a
// stronger signal than free-text description, and bank-provided type fields
// are unreliable across institutions.
func (c *Categorizer) SuggestCategory(store, description, typeHint string) string {
	if category, ok := c.categorizeByStore(store); ok {
		return category
	}
	if category, ok := c.categorizeByKeywords(description, typeHint); ok {
		return category
	}
	return c.rules.DefaultCategory
}

// categorizeByStore matches the lower-cased store name against the ordered
// store rules; the first rule containing a matching keyword wins.
func (c *Categorizer) categorizeByStore(store string) (string, bool) {
	storeLower := strings.ToLower(store)
	if storeLower == "" {
		return "", false
	}
	for _, rule := range c.rules.StoreCategories {
		for _, keyword := range rule.Keywords {
			if strings.Contains(storeLower, keyword) {
				return rule.Category, true
			}
		}
	}
	return "", false
}

// categorizeByKeywords matches the lower-cased description and bank type hint
// against the ordered keyword rules. These cover categories store matching
// cannot express well: interest, payroll, rent, utilities, loans.
func (c *Categorizer) categorizeByKeywords(description, typeHint string) (string, bool) {
	descLower := strings.ToLower(description)
	hintLower := strings.ToLower(typeHint)
	for _, rule := range c.rules.KeywordCategories {
		for _, keyword := range rule.Keywords {
			if strings.Contains(descLower, keyword) || strings.Contains(hintLower, keyword) {
				return rule.Category, true
			}
		}
	}
	return "", false
}

// NormalizeCategory maps a free-form or legacy category string onto the
// canonical set. Unknown categories are accepted title-cased rather than
// rejected: user-entered or bank-specific categories that are not yet mapped
// must not break ingestion.
func (c *Categorizer) NormalizeCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return c.rules.DefaultCategory
	}

	lower := strings.ToLower(trimmed)
	if canonical, ok := c.rules.CategorySynonyms[lower]; ok {
		return canonical
	}
	if canonical, ok := c.rules.CanonicalCasing(trimmed); ok {
		return canonical
	}
	return normalizer.TitleCase(trimmed)
}

// IsValidCategory reports whether category resolves to a member of the closed
// canonical set. The permissive title-case pass-through of NormalizeCategory
// does not count as valid here.
func (c *Categorizer) IsValidCategory(category string) bool {
	if strings.TrimSpace(category) == "" {
		return false
	}
	return c.rules.IsCanonical(c.NormalizeCategory(category))
}

// TransactionType returns "income" when the normalized category is a member
// of the income enumeration and "expense" otherwise. Unknown categories are
// deliberately treated as expenses until explicitly enumerated as income.
func (c *Categorizer) TransactionType(category string) string {
	if c.rules.IsIncomeCategory(c.NormalizeCategory(category)) {
		return models.TypeIncome
	}
	return models.TypeExpense
}

// Rules exposes the rule tables backing this categorizer, for callers that
// surface the category enumerations to clients.
func (c *Categorizer) Rules() *rules.Ruleset {
	return c.rules
}
