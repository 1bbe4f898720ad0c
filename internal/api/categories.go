package api

import (
	"net/http"
)

type categoriesResponse struct {
	ExpenseCategories []string            `json:"expense_categories"`
	IncomeCategories  []string            `json:"income_categories"`
	DefaultCategory   string              `json:"default_category"`
	TagSuggestions    map[string][]string `json:"tag_suggestions"`
}

// Categories reports the category enumerations and the tag suggestions for
// each, so clients can render pickers without hardcoding the rule tables.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	rules := h.cat.Rules()

	suggestions := make(map[string][]string, len(rules.ExpenseCategories)+len(rules.IncomeCategories))
	for _, category := range rules.AllCategories() {
		suggestions[category] = h.tags.SuggestTags(category, "")
	}

	respondJSON(w, http.StatusOK, categoriesResponse{
		ExpenseCategories: rules.ExpenseCategories,
		IncomeCategories:  rules.IncomeCategories,
		DefaultCategory:   rules.DefaultCategory,
		TagSuggestions:    suggestions,
	})
}
