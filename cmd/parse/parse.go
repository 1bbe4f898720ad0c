// Package parse handles the statement parsing command
package parse

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/gmhollar5/PersonalFinanceApp/cmd/root"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a bank statement CSV into categorized transactions",
	Long: `Parse a SoFi or Capital One CSV export. The bank format is detected from
the header row unless --format is given. Parsed transactions are written as
JSON to --output, or to stdout.`,
	Run: parseFunc,
}

var format string

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", models.FormatAuto, "Statement format (sofi, capital_one, auto)")
}

func parseFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Error("Input file is required")
		return
	}

	components, err := root.BuildComponents()
	if err != nil {
		root.Log.Fatalf("Failed to load categorization rules: %v", err)
	}

	content, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Failed to read input file: %v", err)
	}

	result, err := components.Parsers.ParseStatement(string(content), format)
	if err != nil {
		root.Log.Fatalf("Failed to parse statement: %v", err)
	}

	root.Log.Infof("Parsed %d transactions (%s format), %d rows skipped",
		len(result.Transactions), result.Format, len(result.Skipped))
	for _, skipped := range result.Skipped {
		root.Log.Warnf("Skipped line %d: %s", skipped.Line, skipped.Reason)
	}

	out := os.Stdout
	if root.SharedFlags.Output != "" {
		f, err := os.Create(root.SharedFlags.Output)
		if err != nil {
			root.Log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		root.Log.Fatalf("Failed to write output: %v", err)
	}
}
