package parser

import (
	"strings"

	"github.com/gmhollar5/PersonalFinanceApp/internal/common"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/parsererror"
)

// Detect inspects the CSV header to choose a parser format. Unrecognized
// headers are a hard failure: the caller must supply an explicit format or a
// column mapping.
func Detect(content string) (string, error) {
	header, err := common.ReadHeader(content)
	if err != nil {
		return "", &parsererror.UnrecognizedFormatError{}
	}

	// Savings/checking export: Date, Description, Type, Amount, Status
	// (plus a running balance column we do not need).
	if common.HasColumns(header, "date", "description", "type", "amount", "status") {
		return models.FormatSofi, nil
	}

	// Credit card export: Transaction Date, Description, Debit, Credit.
	if common.HasColumns(header, "transaction date", "description", "debit", "credit") {
		return models.FormatCapitalOne, nil
	}

	return "", &parsererror.UnrecognizedFormatError{Header: strings.Join(header, ",")}
}
