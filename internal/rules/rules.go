// Package rules holds the static rule tables driving store normalization,
// category classification and tagging. A Ruleset is built once (from the
// compiled-in defaults, optionally overridden by a YAML file) and injected
// into the components that consume it; it is never mutated at runtime.
package rules

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// StorePattern maps a substring pattern to a canonical store name. Patterns
// are matched case-insensitively against the raw merchant string, in
// declaration order, first match wins. Overlapping patterns must be listed
// most-specific-first ("costco gas" before "costco"); the order of the table
// is a maintenance invariant, not something the code resolves.
type StorePattern struct {
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name"`
}

// CategoryRule maps a set of keywords to a category. Rules are evaluated in
// declaration order and the first rule with a matching keyword wins.
type CategoryRule struct {
	Keywords []string `yaml:"keywords"`
	Category string   `yaml:"category"`
}

// Ruleset is the complete set of rule tables. All lookups are
// case-insensitive; map keys and keywords are stored lowercase.
type Ruleset struct {
	ExpenseCategories []string `yaml:"expense_categories"`
	IncomeCategories  []string `yaml:"income_categories"`

	// DefaultCategory is returned when no classification rule matches.
	DefaultCategory string `yaml:"default_category"`

	StoreExact       map[string]string `yaml:"store_exact"`
	StorePatterns    []StorePattern    `yaml:"store_patterns"`
	CategorySynonyms map[string]string `yaml:"category_synonyms"`

	StoreCategories   []CategoryRule `yaml:"store_categories"`
	KeywordCategories []CategoryRule `yaml:"keyword_categories"`

	// CategoryTags are ordered per-category tag suggestion lists; only the
	// first few are surfaced to the user.
	CategoryTags map[string][]string `yaml:"category_tags"`

	// Automatic-tag inputs. The large-purchase threshold is parsed from its
	// YAML string form by the Store.
	GolfKeywords        []string        `yaml:"golf_keywords"`
	TravelKeywords      []string        `yaml:"travel_keywords"`
	LargePurchaseAmount decimal.Decimal `yaml:"-"`
}

// AllCategories returns the sorted union of the expense and income
// enumerations.
func (r *Ruleset) AllCategories() []string {
	all := make([]string, 0, len(r.ExpenseCategories)+len(r.IncomeCategories))
	all = append(all, r.ExpenseCategories...)
	all = append(all, r.IncomeCategories...)
	sort.Strings(all)
	return all
}

// IsCanonical reports whether category is an exact member of the closed
// canonical set.
func (r *Ruleset) IsCanonical(category string) bool {
	for _, c := range r.ExpenseCategories {
		if c == category {
			return true
		}
	}
	for _, c := range r.IncomeCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsIncomeCategory reports whether category is a member of the income
// enumeration (exact match).
func (r *Ruleset) IsIncomeCategory(category string) bool {
	for _, c := range r.IncomeCategories {
		if c == category {
			return true
		}
	}
	return false
}

// CanonicalCasing returns the canonically-cased member matching category
// case-insensitively, and whether one exists.
func (r *Ruleset) CanonicalCasing(category string) (string, bool) {
	lower := strings.ToLower(category)
	for _, c := range r.ExpenseCategories {
		if strings.ToLower(c) == lower {
			return c, true
		}
	}
	for _, c := range r.IncomeCategories {
		if strings.ToLower(c) == lower {
			return c, true
		}
	}
	return "", false
}
