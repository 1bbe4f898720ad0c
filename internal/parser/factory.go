package parser

import (
	"fmt"

	"github.com/gmhollar5/PersonalFinanceApp/internal/capitaloneparser"
	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/common"
	"github.com/gmhollar5/PersonalFinanceApp/internal/genericparser"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/sofiparser"
)

// Factory creates parsers wired to one categorization pipeline, so every
// institution's transactions flow through the same normalizer and classifier.
type Factory struct {
	Normalizer  *normalizer.Normalizer
	Categorizer *categorizer.Categorizer
	Logger      logging.Logger
}

// NewFactory creates a parser factory over the given pipeline components.
func NewFactory(norm *normalizer.Normalizer, cat *categorizer.Categorizer, logger logging.Logger) *Factory {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Factory{Normalizer: norm, Categorizer: cat, Logger: logger}
}

// Get returns the parser for the named format.
func (f *Factory) Get(format string) (Parser, error) {
	switch format {
	case models.FormatSofi:
		return sofiparser.New(f.Normalizer, f.Categorizer, f.Logger), nil
	case models.FormatCapitalOne:
		return capitaloneparser.New(f.Normalizer, f.Categorizer, f.Logger), nil
	default:
		return nil, fmt.Errorf("unknown parser format: %s", format)
	}
}

// GetGeneric returns a column-mapped parser for sources without a dedicated
// institution parser.
func (f *Factory) GetGeneric(mapping models.ColumnMapping) Parser {
	return genericparser.New(mapping, f.Normalizer, f.Categorizer, f.Logger)
}

// ParseStatement parses CSV content with the named format, auto-detecting
// when format is empty or "auto".
func (f *Factory) ParseStatement(content, format string) (*models.ParseResult, error) {
	content = common.StripBOM(content)

	if format == "" || format == models.FormatAuto {
		detected, err := Detect(content)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	p, err := f.Get(format)
	if err != nil {
		return nil, err
	}

	result, err := p.Parse(content)
	if err != nil {
		return nil, err
	}

	f.Logger.Info("Parsed bank statement",
		logging.Field{Key: logging.FieldFormat, Value: result.Format},
		logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)},
		logging.Field{Key: "skipped", Value: len(result.Skipped)})
	return result, nil
}
