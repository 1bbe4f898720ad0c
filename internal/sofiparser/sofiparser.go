// Package sofiparser parses SoFi checking/savings CSV exports.
//
// Format: Date, Description, Type, Amount, Current balance, Status. Amounts
// are signed; the running balance column is ignored. Only posted rows are
// importable.
package sofiparser

import (
	"strings"

	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/common"
	"github.com/gmhollar5/PersonalFinanceApp/internal/dateutils"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"
)

// The institution's own name, forced as the store for interest postings:
// there is no real merchant behind an interest credit.
const institutionName = "SoFi"

// Row is one line of a SoFi CSV export.
type Row struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Type        string `csv:"Type"`
	Amount      string `csv:"Amount"`
	Balance     string `csv:"Current balance"`
	Status      string `csv:"Status"`
}

// Parser converts SoFi CSV exports into canonical parsed transactions.
type Parser struct {
	norm   *normalizer.Normalizer
	cat    *categorizer.Categorizer
	logger logging.Logger
}

// New creates a SoFi parser over the given pipeline components.
func New(norm *normalizer.Normalizer, cat *categorizer.Categorizer, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{norm: norm, cat: cat, logger: logger}
}

// Format returns the format name this parser handles.
func (p *Parser) Format() string {
	return models.FormatSofi
}

// Parse converts CSV content into a ParseResult. Rows that cannot be parsed
// are skipped with a reason; one bad row never aborts the import.
func (p *Parser) Parse(content string) (*models.ParseResult, error) {
	rows, err := common.ReadRows[Row](content)
	if err != nil {
		return nil, err
	}

	result := &models.ParseResult{Format: models.FormatSofi}
	for i, row := range rows {
		line := i + 2 // data rows start after the header line

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
	status := strings.TrimSpace(row.Status)
	if !strings.EqualFold(status, models.StatusPosted) {
		return models.ParsedTransaction{}, "status is not posted: " + status
	}

	date, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.ParsedTransaction{}, "unparseable date: " + strings.TrimSpace(row.Date)
	}

	amount, err := models.ParseAmount(row.Amount)
	if err != nil {
		return models.ParsedTransaction{}, "unparseable amount: " + strings.TrimSpace(row.Amount)
	}

	description := strings.TrimSpace(row.Description)
	bankType := strings.TrimSpace(row.Type)

	store := p.norm.Normalize(description)
	category := p.cat.SuggestCategory(store, description, bankType)
	txType := p.guessType(bankType, description, category)

	// The amount sign is authoritative over any keyword guess: a negative
	// amount is always an expense, and a positive amount guessed as an
	// expense is corrected to income.
	if amount.IsNegative() {
		txType = models.TypeExpense
		amount = amount.Abs()
	} else if amount.IsPositive() && txType == models.TypeExpense {
		txType = models.TypeIncome
	}

	if category == "Interest" {
		store = institutionName
	}

	return models.ParsedTransaction{
		Date:              dateutils.DateOnly(date),
		Store:             store,
		Description:       "", // left blank for the user to fill in on review
		OriginalType:      bankType,
		Amount:            amount,
		Type:              txType,
		SuggestedCategory: category,
	}, ""
}

// guessType decides income vs expense from the bank's type field, then the
// description, then the suggested category. The caller applies the amount
// sign on top of this guess.
func (p *Parser) guessType(bankType, description, category string) string {
	typeLower := strings.ToLower(bankType)
	descLower := strings.ToLower(description)

	for _, word := range []string{"deposit", "credit", "interest", "payroll"} {
		if strings.Contains(typeLower, word) {
			return models.TypeIncome
		}
	}
	for _, word := range []string{"salary", "payroll", "interest"} {
		if strings.Contains(descLower, word) {
			return models.TypeIncome
		}
	}
	for _, word := range []string{"payment", "purchase", "debit", "withdrawal"} {
		if strings.Contains(typeLower, word) {
			return models.TypeExpense
		}
	}
	return p.cat.TransactionType(category)
}
