// Package genericparser parses CSV exports from institutions without a
// dedicated parser, driven by a caller-supplied column mapping.
package genericparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/dateutils"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Parser converts arbitrary CSV exports into canonical parsed transactions
// using a column mapping. Any category column named by the mapping is
// deliberately ignored: store and category always flow through the
// normalizer and classifier so the canonical taxonomy stays consistent
// regardless of what the source CSV labeled them.
type Parser struct {
	mapping models.ColumnMapping
	norm    *normalizer.Normalizer
	cat     *categorizer.Categorizer
	logger  logging.Logger
}

// New creates a generic parser for the given column mapping.
func New(mapping models.ColumnMapping, norm *normalizer.Normalizer, cat *categorizer.Categorizer, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{mapping: mapping, norm: norm, cat: cat, logger: logger}
}

// Format returns the format name this parser handles.
func (p *Parser) Format() string {
	return models.FormatGeneric
}

// Parse converts CSV content into a ParseResult using the configured column
// mapping. A header that does not contain the mapped columns is a format
// error; row-level problems are skipped with a reason.
func (p *Parser) Parse(content string) (*models.ParseResult, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &parsererror.UnrecognizedFormatError{}
	}

	columns, err := p.resolveColumns(header)
	if err != nil {
		return nil, err
	}

	result := &models.ParseResult{Format: models.FormatGeneric}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, models.SkippedRow{Line: line, Reason: "malformed CSV row"})
			continue
		}

		tx, skipReason := p.convertRecord(record, columns)
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

// columnIndexes holds resolved positions for the mapped columns. -1 means
// the column is not mapped.
type columnIndexes struct {
	date, store, description, amount, debit, credit int
}

func (p *Parser) resolveColumns(header []string) (columnIndexes, error) {
	find := func(name string) int {
		if name == "" {
			return -1
		}
		for i, col := range header {
			if strings.EqualFold(strings.TrimSpace(col), name) {
				return i
			}
		}
		return -1
	}

	idx := columnIndexes{
		date:        find(p.mapping.DateColumn),
		store:       find(p.mapping.StoreColumn),
		description: find(p.mapping.DescriptionColumn),
		amount:      find(p.mapping.AmountColumn),
		debit:       find(p.mapping.DebitColumn),
		credit:      find(p.mapping.CreditColumn),
	}

	if idx.date < 0 {
		return idx, &parsererror.DataExtractionError{
			Parser: models.FormatGeneric, Field: "date",
			Reason: fmt.Sprintf("column %q not found in header", p.mapping.DateColumn),
		}
	}
	if idx.store < 0 && idx.description < 0 {
		return idx, &parsererror.DataExtractionError{
			Parser: models.FormatGeneric, Field: "store",
			Reason: "neither store nor description column found in header",
		}
	}
	if p.mapping.UseDebitCredit {
		if idx.debit < 0 && idx.credit < 0 {
			return idx, &parsererror.DataExtractionError{
				Parser: models.FormatGeneric, Field: "amount",
				Reason: "neither debit nor credit column found in header",
			}
		}
	} else if idx.amount < 0 {
		return idx, &parsererror.DataExtractionError{
			Parser: models.FormatGeneric, Field: "amount",
			Reason: fmt.Sprintf("column %q not found in header", p.mapping.AmountColumn),
		}
	}

	if p.mapping.CategoryColumn != "" {
		p.logger.Debug("Ignoring mapped category column; classifier output is authoritative",
			logging.Field{Key: "column", Value: p.mapping.CategoryColumn})
	}
	return idx, nil
}

func (p *Parser) convertRecord(record []string, idx columnIndexes) (models.ParsedTransaction, string) {
	cell := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := dateutils.ParseDate(cell(idx.date))
	if err != nil {
		return models.ParsedTransaction{}, "unparseable date: " + cell(idx.date)
	}

	merchant := cell(idx.store)
	if merchant == "" {
		merchant = cell(idx.description)
	}
	if merchant == "" {
		return models.ParsedTransaction{}, "empty store and description"
	}

	amount, txType, skipReason := p.resolveAmount(cell, idx)
	if skipReason != "" {
		return models.ParsedTransaction{}, skipReason
	}

	store := p.norm.Normalize(merchant)
	category := p.cat.SuggestCategory(store, cell(idx.description), "")

	// The sign (or column choice) decides income vs expense.
	return models.ParsedTransaction{
		Date:              dateutils.DateOnly(date),
		Store:             store,
		Description:       "",
		OriginalType:      "",
		Amount:            amount,
		Type:              txType,
		SuggestedCategory: category,
	}, ""
}

// resolveAmount extracts the amount and direction from either the single
// signed column or the debit/credit pair. Debit takes priority when both are
// populated.
func (p *Parser) resolveAmount(cell func(int) string, idx columnIndexes) (decimal.Decimal, string, string) {
	if p.mapping.UseDebitCredit {
		debitRaw, creditRaw := cell(idx.debit), cell(idx.credit)
		if debitRaw != "" {
			debit, err := models.ParseAmount(debitRaw)
			if err != nil {
				return decimal.Zero, "", "unparseable debit: " + debitRaw
			}
			if debit.IsPositive() {
				return debit, models.TypeExpense, ""
			}
		}
		if creditRaw != "" {
			credit, err := models.ParseAmount(creditRaw)
			if err != nil {
				return decimal.Zero, "", "unparseable credit: " + creditRaw
			}
			if credit.IsPositive() {
				return credit, models.TypeIncome, ""
			}
		}
		return decimal.Zero, "", "no debit or credit amount"
	}

	raw := cell(idx.amount)
	amount, err := models.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, "", "unparseable amount: " + raw
	}
	if amount.IsNegative() {
		return amount.Abs(), models.TypeExpense, ""
	}
	return amount, models.TypeIncome, ""
}
