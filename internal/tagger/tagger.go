// Package tagger derives automatic tags from transaction details and exposes
// per-category tag suggestions for clients.
package tagger

import (
	"sort"
	"strings"

	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/rules"

	"github.com/shopspring/decimal"
)

// How many configured tags per category are surfaced as suggestions.
const maxSuggestionsPerCategory = 3

// Tagger evaluates the automatic-tag predicates and the suggestion table.
type Tagger struct {
	rules  *rules.Ruleset
	logger logging.Logger
}

// New creates a Tagger over the given ruleset.
func New(ruleset *rules.Ruleset, logger logging.Logger) *Tagger {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Tagger{rules: ruleset, logger: logger}
}

// AutomaticTags returns the tags applied to a transaction without user input.
// The predicates are independent: every one that matches contributes its
// tags. The result is de-duplicated and sorted.
func (t *Tagger) AutomaticTags(store, category string, amount decimal.Decimal, description string) []string {
	storeLower := strings.ToLower(store)
	descLower := strings.ToLower(description)

	set := make(map[string]struct{})
	add := func(tags ...string) {
		for _, tag := range tags {
			set[tag] = struct{}{}
		}
	}

	if category == "Subscriptions" {
		add("recurring")
	}
	if category == "Rent" {
		add("recurring", "housing")
	}
	if containsAny(storeLower, t.rules.GolfKeywords) || containsAny(descLower, t.rules.GolfKeywords) {
		add("golf")
	}
	if containsAny(storeLower, t.rules.TravelKeywords) {
		add("vacation")
	}
	if t.rules.LargePurchaseAmount.IsPositive() && amount.GreaterThan(t.rules.LargePurchaseAmount) {
		add("large")
	}
	if category == "Groceries" {
		add("weekly")
	}

	return sortedSet(set)
}

// SuggestTags returns advisory tags for a category and store: the leading
// configured tags for the category plus store-derived hints. The result is
// de-duplicated; the client decides presentation order.
func (t *Tagger) SuggestTags(category, store string) []string {
	set := make(map[string]struct{})

	if configured, ok := t.rules.CategoryTags[category]; ok {
		limit := maxSuggestionsPerCategory
		if len(configured) < limit {
			limit = len(configured)
		}
		for _, tag := range configured[:limit] {
			set[tag] = struct{}{}
		}
	}

	if store != "" {
		storeLower := strings.ToLower(store)
		if strings.Contains(storeLower, "restaurant") || strings.Contains(storeLower, "cafe") {
			set["dining"] = struct{}{}
		}
		if strings.Contains(storeLower, "gym") || strings.Contains(storeLower, "fitness") {
			set["fitness"] = struct{}{}
		}
	}

	return sortedSet(set)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func sortedSet(set map[string]struct{}) []string {
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
