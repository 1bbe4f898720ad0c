// Package capitaloneparser parses Capital One credit card CSV exports.
//
// Format: Transaction Date, Posted Date, Card No., Description, Category,
// Debit, Credit. Debit and credit are separate columns; the bank's own
// Category column is kept only for audit, never used for classification, so
// categorization stays consistent across institutions.
package capitaloneparser

import (
	"strings"

	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/common"
	"github.com/gmhollar5/PersonalFinanceApp/internal/dateutils"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"

	"github.com/shopspring/decimal"
)

// Card payments from the linked checking account show up as credits on the
// card statement. They are transfers, not income; importing them would
// double-count.
var selfPaymentMarkers = []string{"AUTOPAY", "ONLINE PYMT", "MOBILE PYMT", "PAYMENT"}

// Row is one line of a Capital One CSV export.
type Row struct {
	TransactionDate string `csv:"Transaction Date"`
	PostedDate      string `csv:"Posted Date"`
	CardNo          string `csv:"Card No."`
	Description     string `csv:"Description"`
	Category        string `csv:"Category"`
	Debit           string `csv:"Debit"`
	Credit          string `csv:"Credit"`
}

// Parser converts Capital One CSV exports into canonical parsed
// transactions.
type Parser struct {
	norm   *normalizer.Normalizer
	cat    *categorizer.Categorizer
	logger logging.Logger
}

// New creates a Capital One parser over the given pipeline components.
func New(norm *normalizer.Normalizer, cat *categorizer.Categorizer, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{norm: norm, cat: cat, logger: logger}
}

// Format returns the format name this parser handles.
func (p *Parser) Format() string {
	return models.FormatCapitalOne
}

// Parse converts CSV content into a ParseResult. Rows that cannot be parsed
// are skipped with a reason; one bad row never aborts the import.
func (p *Parser) Parse(content string) (*models.ParseResult, error) {
	rows, err := common.ReadRows[Row](content)
	if err != nil {
		return nil, err
	}

	result := &models.ParseResult{Format: models.FormatCapitalOne}
	for i, row := range rows {
		line := i + 2

		tx, skipReason := p.convertRow(row)
		if skipReason != "" {
			p.logger.Debug("Skipping row",
				logging.Field{Key: logging.FieldRow, Value: line},
				logging.Field{Key: logging.FieldReason, Value: skipReason})
			result.Skipped = append(result.Skipped, models.SkippedRow{Line: line, Reason: skipReason})
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result, nil
}

// convertRow maps one CSV row to a ParsedTransaction, or returns a skip
// reason.
func (p *Parser) convertRow(row Row) (models.ParsedTransaction, string) {
	description := strings.TrimSpace(row.Description)

	if isSelfPayment(description) {
		return models.ParsedTransaction{}, "card payment transfer: " + description
	}

	date, err := dateutils.ParseDate(row.TransactionDate)
	if err != nil {
		return models.ParsedTransaction{}, "unparseable date: " + strings.TrimSpace(row.TransactionDate)
	}

	debit, err := parseOptionalAmount(row.Debit)
	if err != nil {
		return models.ParsedTransaction{}, "unparseable debit: " + strings.TrimSpace(row.Debit)
	}
	credit, err := parseOptionalAmount(row.Credit)
	if err != nil {
		return models.ParsedTransaction{}, "unparseable credit: " + strings.TrimSpace(row.Credit)
	}

	originalCategory := strings.TrimSpace(row.Category)

	// Debit takes priority when both columns are populated.
	var amount decimal.Decimal
	var txType, originalType string
	switch {
	case debit.IsPositive():
		amount = debit
		txType = models.TypeExpense
		originalType = originalCategory
		if originalType == "" {
			originalType = "Purchase"
		}
	case credit.IsPositive():
		amount = credit
		txType = models.TypeIncome
		originalType = originalCategory
		if originalType == "" {
			originalType = "Payment"
		}
	default:
		return models.ParsedTransaction{}, "no debit or credit amount"
	}

	store := p.norm.Normalize(description)
	category := p.cat.SuggestCategory(store, description, "")

	return models.ParsedTransaction{
		Date:              dateutils.DateOnly(date),
		Store:             store,
		Description:       "",
		OriginalType:      originalType,
		Amount:            amount,
		Type:              txType,
		SuggestedCategory: category,
	}, ""
}

// parseOptionalAmount parses a debit or credit cell, treating an empty cell
// as zero.
func parseOptionalAmount(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return models.ParseAmount(raw)
}

func isSelfPayment(description string) bool {
	upper := strings.ToUpper(description)
	if !strings.Contains(upper, "CAPITAL ONE") {
		return false
	}
	for _, marker := range selfPaymentMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
