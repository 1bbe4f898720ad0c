package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Store loads rule tables from a YAML file, falling back to the compiled-in
// defaults for anything the file does not override. The YAML file is the
// customization surface: users extend the rule tables without touching
// parsing logic.
type Store struct {
	RulesFile string
	logger    logging.Logger
}

// NewStore creates a rule store reading from rulesFile. An empty rulesFile
// means "rules.yaml" searched in the standard locations.
func NewStore(rulesFile string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{RulesFile: rulesFile, logger: logger}
}

// FindConfigFile looks for a configuration file in the standard locations:
// the path itself, ./config/, and ~/.config/pfa/.
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "pfa", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load returns the effective ruleset: defaults overlaid with any tables
// present in the rules file. A missing file is not an error.
func (s *Store) Load() (*Ruleset, error) {
	ruleset := Default()

	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Rules file not found, using built-in rules",
				logging.Field{Key: "file", Value: filename})
			return ruleset, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var overrides fileRuleset
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}

	if err := merge(ruleset, &overrides); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", filePath, err)
	}
	normalize(ruleset)

	s.logger.Info("Loaded rule tables",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "store_patterns", Value: len(ruleset.StorePatterns)},
		logging.Field{Key: "store_categories", Value: len(ruleset.StoreCategories)})
	return ruleset, nil
}

// fileRuleset is the YAML shape of a rules file. It mirrors Ruleset except
// that the large-purchase threshold is a string, parsed into a decimal during
// merge.
type fileRuleset struct {
	Ruleset             `yaml:",inline"`
	LargePurchaseAmount string `yaml:"large_purchase_amount"`
}

// merge overlays non-empty tables from src onto dst. Tables are replaced
// wholesale, never element-merged: declaration order within a table is
// load-bearing and splicing user entries into the defaults would scramble it.
func merge(dst *Ruleset, file *fileRuleset) error {
	src := &file.Ruleset
	if len(src.ExpenseCategories) > 0 {
		dst.ExpenseCategories = src.ExpenseCategories
	}
	if len(src.IncomeCategories) > 0 {
		dst.IncomeCategories = src.IncomeCategories
	}
	if src.DefaultCategory != "" {
		dst.DefaultCategory = src.DefaultCategory
	}
	if len(src.StoreExact) > 0 {
		dst.StoreExact = src.StoreExact
	}
	if len(src.StorePatterns) > 0 {
		dst.StorePatterns = src.StorePatterns
	}
	if len(src.CategorySynonyms) > 0 {
		dst.CategorySynonyms = src.CategorySynonyms
	}
	if len(src.StoreCategories) > 0 {
		dst.StoreCategories = src.StoreCategories
	}
	if len(src.KeywordCategories) > 0 {
		dst.KeywordCategories = src.KeywordCategories
	}
	if len(src.CategoryTags) > 0 {
		dst.CategoryTags = src.CategoryTags
	}
	if len(src.GolfKeywords) > 0 {
		dst.GolfKeywords = src.GolfKeywords
	}
	if len(src.TravelKeywords) > 0 {
		dst.TravelKeywords = src.TravelKeywords
	}
	if file.LargePurchaseAmount != "" {
		threshold, err := decimal.NewFromString(file.LargePurchaseAmount)
		if err != nil {
			return fmt.Errorf("large_purchase_amount: %w", err)
		}
		dst.LargePurchaseAmount = threshold
	}
	return nil
}

// normalize lowercases every key and keyword that is matched
// case-insensitively, so user-supplied tables behave like the defaults.
func normalize(r *Ruleset) {
	exact := make(map[string]string, len(r.StoreExact))
	for k, v := range r.StoreExact {
		exact[strings.ToLower(k)] = v
	}
	r.StoreExact = exact

	synonyms := make(map[string]string, len(r.CategorySynonyms))
	for k, v := range r.CategorySynonyms {
		synonyms[strings.ToLower(k)] = v
	}
	r.CategorySynonyms = synonyms

	for i := range r.StorePatterns {
		r.StorePatterns[i].Pattern = strings.ToLower(r.StorePatterns[i].Pattern)
	}
	for i := range r.StoreCategories {
		for j, kw := range r.StoreCategories[i].Keywords {
			r.StoreCategories[i].Keywords[j] = strings.ToLower(kw)
		}
	}
	for i := range r.KeywordCategories {
		for j, kw := range r.KeywordCategories[i].Keywords {
			r.KeywordCategories[i].Keywords[j] = strings.ToLower(kw)
		}
	}
	for i, kw := range r.GolfKeywords {
		r.GolfKeywords[i] = strings.ToLower(kw)
	}
	for i, kw := range r.TravelKeywords {
		r.TravelKeywords[i] = strings.ToLower(kw)
	}
}
