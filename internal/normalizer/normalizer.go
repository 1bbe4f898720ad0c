// Package normalizer converts raw, noisy bank-provided merchant strings into
// clean canonical display names.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/rules"
)

// Card-network noise stripped from merchant strings that no rule matched:
// masked reference codes ("*6Z7XF0Y53"), numeric refs ("#12345"), trailing
// store numbers ("Target 00002204"), marketplace and payment suffixes.
var (
	starCodeRe    = regexp.MustCompile(`\*[A-Za-z0-9]+`)
	hashCodeRe    = regexp.MustCompile(`#\d+`)
	trailingNumRe = regexp.MustCompile(`\s+\d{4,}`)
	marketplaceRe = regexp.MustCompile(`(?i)Mktpl[ace]*\s*`)
	paymentRe     = regexp.MustCompile(`(?i)Pmts?\s*`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Legal-entity suffixes stripped when they end the string, with an optional
// trailing period.
var suffixRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+Inc\.?$`),
	regexp.MustCompile(`(?i)\s+LLC\.?$`),
	regexp.MustCompile(`(?i)\s+Corp\.?$`),
	regexp.MustCompile(`(?i)\s+Ltd\.?$`),
	regexp.MustCompile(`(?i)\s+Co\.?$`),
	regexp.MustCompile(`(?i)\s+Company\.?$`),
	regexp.MustCompile(`(?i)\s+US\.?$`),
}

// Normalizer maps raw merchant strings to canonical store names using the
// injected rule tables.
type Normalizer struct {
	rules  *rules.Ruleset
	logger logging.Logger
}

// New creates a Normalizer over the given ruleset.
func New(ruleset *rules.Ruleset, logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Normalizer{rules: ruleset, logger: logger}
}

// Normalize converts a raw merchant string to its canonical display name.
//
// Lookup order: exact-match table, then the pattern table in declared order
// (first substring hit wins), then structural cleanup of the original-cased
// string. A nonempty input never normalizes to empty.
func (n *Normalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	original := strings.TrimSpace(raw)
	lower := strings.ToLower(original)

	if name, ok := n.rules.StoreExact[lower]; ok {
		return name
	}

	for _, p := range n.rules.StorePatterns {
		if strings.Contains(lower, p.Pattern) {
			return p.Name
		}
	}

	cleaned := starCodeRe.ReplaceAllString(original, "")
	cleaned = hashCodeRe.ReplaceAllString(cleaned, "")
	cleaned = trailingNumRe.ReplaceAllString(cleaned, "")
	cleaned = marketplaceRe.ReplaceAllString(cleaned, "")
	cleaned = paymentRe.ReplaceAllString(cleaned, "")

	for _, re := range suffixRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	// Cleanup must not erase a nonempty merchant string entirely.
	if cleaned == "" {
		return TitleCase(original)
	}
	return TitleCase(cleaned)
}

// TitleCase uppercases the first letter of each space-separated word and
// lowercases the rest.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		for j, r := range runes {
			if unicode.IsLetter(r) {
				runes[j] = unicode.ToUpper(r)
				break
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
