// Package categorize handles the category suggestion command
package categorize

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/gmhollar5/PersonalFinanceApp/cmd/root"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Suggest a category and tags for a store",
	Long: `Suggest a category for a merchant using the ordered rule tables, and the
tags that would be applied automatically.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Store, "store", "s", "", "Store or merchant name to categorize")
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description (optional)")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Transaction amount (optional)")
	Cmd.Flags().StringVarP(&root.TypeHint, "type", "t", "", "Transaction type hint: income or expense (optional)")
	Cmd.MarkFlagRequired("store")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Categorize command called")

	components, err := root.BuildComponents()
	if err != nil {
		root.Log.Fatalf("Failed to load categorization rules: %v", err)
	}

	normalized := components.Normalizer.Normalize(root.Store)
	category := components.Categorize.SuggestCategory(normalized, root.Description, root.TypeHint)
	txnType := components.Categorize.TransactionType(category)

	amount := decimal.Zero
	if root.Amount != "" {
		amount, err = models.ParseAmount(root.Amount)
		if err != nil {
			root.Log.Warnf("Ignoring unparseable amount %q", root.Amount)
			amount = decimal.Zero
		}
	}
	tags := components.Tagger.AutomaticTags(normalized, category, amount, root.Description)

	root.Log.Infof("Store: %s", normalized)
	root.Log.Infof("Category: %s (%s)", category, txnType)
	if len(tags) > 0 {
		root.Log.Infof("Tags: %v", tags)
	}
}
