package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/gmhollar5/PersonalFinanceApp/cmd/categorize"
	"github.com/gmhollar5/PersonalFinanceApp/cmd/migrate"
	"github.com/gmhollar5/PersonalFinanceApp/cmd/parse"
	"github.com/gmhollar5/PersonalFinanceApp/cmd/root"
	"github.com/gmhollar5/PersonalFinanceApp/cmd/serve"
)

func init() {
	// Load environment variables before any logging happens so PFA_LOG_LEVEL
	// applies to every logger the commands create.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(migrate.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("PFA_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
