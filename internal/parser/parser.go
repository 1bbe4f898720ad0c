// Package parser defines the bank statement parser interface, the format
// detector and the factory wiring parsers to the categorization pipeline.
package parser

import (
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

// Parser converts raw CSV content from one institution's export format into
// canonical parsed transactions. Implementations are stateless per call:
// malformed rows are reported as skipped, never fatal; only an unrecognized
// or structurally unreadable format fails the whole call.
type Parser interface {
	// Format returns the format name this parser handles.
	Format() string

	// Parse converts CSV content into a ParseResult. Row-level problems are
	// recorded in ParseResult.Skipped; processing continues.
	Parse(content string) (*models.ParseResult, error)
}
