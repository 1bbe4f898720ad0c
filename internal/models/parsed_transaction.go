package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParsedTransaction is a single transaction produced by a bank statement
// parser. It is transient: the caller reviews the parsed sequence and decides
// what to persist. Amount is always non-negative; the sign of the raw bank
// amount is consumed during parsing to decide Type.
type ParsedTransaction struct {
	Date              time.Time       `json:"date"`
	Store             string          `json:"store"`
	Description       string          `json:"description"`
	OriginalType      string          `json:"original_type"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	SuggestedCategory string          `json:"suggested_category"`
}

// SkippedRow records why a CSV row was excluded from the parse output. Rows
// are skipped, never partially emitted.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ParseResult is the outcome of one parse call: the detected or confirmed
// format, the transactions in input order, and the rows that were skipped.
type ParseResult struct {
	Format       string              `json:"format"`
	Transactions []ParsedTransaction `json:"transactions"`
	Skipped      []SkippedRow        `json:"skipped,omitempty"`
}

// ColumnMapping tells the generic parser which CSV column holds each logical
// role. A Category column, if named, is deliberately ignored: store and
// category always flow through the normalizer and classifier so the canonical
// taxonomy stays consistent across sources.
type ColumnMapping struct {
	DateColumn        string `json:"date_column" yaml:"date_column"`
	StoreColumn       string `json:"store_column" yaml:"store_column"`
	DescriptionColumn string `json:"description_column" yaml:"description_column"`
	CategoryColumn    string `json:"category_column" yaml:"category_column"`

	// Single-amount mode: one signed column.
	AmountColumn string `json:"amount_column" yaml:"amount_column"`

	// Dual-column mode: separate debit and credit columns.
	UseDebitCredit bool   `json:"use_debit_credit" yaml:"use_debit_credit"`
	DebitColumn    string `json:"debit_column" yaml:"debit_column"`
	CreditColumn   string `json:"credit_column" yaml:"credit_column"`
}
