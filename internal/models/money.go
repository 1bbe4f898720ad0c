package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary string from a bank CSV into a decimal.
// It tolerates the noise banks put in amount columns: currency symbols,
// thousands separators, surrounding whitespace and accounting-style
// parentheses for negatives.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// FormatAmount renders a decimal with two fixed decimal places, the storage
// and wire representation used throughout the application.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
