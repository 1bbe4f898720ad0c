// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gmhollar5/PersonalFinanceApp/internal/categorizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/config"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
	"github.com/gmhollar5/PersonalFinanceApp/internal/normalizer"
	"github.com/gmhollar5/PersonalFinanceApp/internal/parser"
	"github.com/gmhollar5/PersonalFinanceApp/internal/rules"
	"github.com/gmhollar5/PersonalFinanceApp/internal/tagger"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Rules  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pfa",
		Short: "A personal finance tracker with bank statement import and rule-based categorization.",
		Long: `pfa tracks income and expenses per user. It parses SoFi and Capital One
CSV exports, normalizes merchant names, suggests categories and tags from
ordered rule tables, and serves an HTTP JSON API over a SQLite store.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pfa!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Log = config.ConfigureLogging(Cfg)
			logging.SetDefaultLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific serve command flags
	Addr   string
	DBPath string

	// Specific categorize command flags
	Store       string
	Description string
	Amount      string
	TypeHint    string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Rules, "rules", "", "Categorization rules YAML file")
}

// Components holds the wired classification pipeline shared by commands.
type Components struct {
	Rules      *rules.Ruleset
	Normalizer *normalizer.Normalizer
	Categorize *categorizer.Categorizer
	Tagger     *tagger.Tagger
	Parsers    *parser.Factory
}

// BuildComponents loads the rule tables and wires the pipeline around them.
func BuildComponents() (*Components, error) {
	logger := logging.GetLogger()

	rulesFile := SharedFlags.Rules
	if rulesFile == "" && Cfg != nil {
		rulesFile = Cfg.Rules.File
	}
	store := rules.NewStore(rulesFile, logger)
	ruleset, err := store.Load()
	if err != nil {
		return nil, err
	}

	norm := normalizer.New(ruleset, logger)
	cat := categorizer.New(ruleset, logger)
	tags := tagger.New(ruleset, logger)
	factory := parser.NewFactory(norm, cat, logger)

	return &Components{
		Rules:      ruleset,
		Normalizer: norm,
		Categorize: cat,
		Tagger:     tags,
		Parsers:    factory,
	}, nil
}
