// Package migrate creates or updates the database schema
package migrate

import (
	"github.com/spf13/cobra"

	"github.com/gmhollar5/PersonalFinanceApp/cmd/root"
	"github.com/gmhollar5/PersonalFinanceApp/internal/database"
)

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run:   migrateFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.DBPath, "db", "", "SQLite database path (overrides config)")
}

func migrateFunc(cmd *cobra.Command, args []string) {
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
		root.Log.Fatalf("Failed to apply schema: %v", err)
	}
	root.Log.Infof("Database schema is up to date: %s", dbPath)
}
