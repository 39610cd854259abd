package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"work-tracker/internal/cli"
	"work-tracker/internal/config"
	"work-tracker/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Debugln("no .env file loaded:", err)
	}

	root := cli.NewRootCommand(config.NewLoader())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
