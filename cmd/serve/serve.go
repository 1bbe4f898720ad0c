// Package serve starts the HTTP JSON API
package serve

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/gmhollar5/PersonalFinanceApp/cmd/root"
	"github.com/gmhollar5/PersonalFinanceApp/internal/api"
	"github.com/gmhollar5/PersonalFinanceApp/internal/database"
	"github.com/gmhollar5/PersonalFinanceApp/internal/logging"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON API server",
	Long: `Serve the personal finance API: users, transactions, statement upload,
account balances and category metadata.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.Addr, "addr", "", "Listen address (overrides config)")
	Cmd.Flags().StringVar(&root.DBPath, "db", "", "SQLite database path (overrides config)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	components, err := root.BuildComponents()
	if err != nil {
		root.Log.Fatalf("Failed to load categorization rules: %v", err)
	}

	dbPath := root.DBPath
	if dbPath == "" {
		dbPath = root.Cfg.Database.Path
	}
	db, err := database.Open(dbPath)
	if err != nil {
		root.Log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Init(); err != nil {
		root.Log.Fatalf("Failed to initialize database: %v", err)
	}

	addr := root.Addr
	if addr == "" {
		addr = root.Cfg.Server.Addr
	}

	handler := api.New(db, components.Parsers, components.Categorize, components.Tagger, logging.GetLogger())

	root.Log.Infof("Listening on %s (database: %s)", addr, dbPath)
	if err := http.ListenAndServe(addr, handler.Routes()); err != nil {
		root.Log.Fatalf("Server error: %v", err)
	}
}
