package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arjunpx/fuelbill-api/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "fuelbillctl",
	Short: "Generate fuel receipts from the command line",
	Long: `fuelbillctl renders fuel-station receipts without the HTTP server:
load a bill record from JSON (or start from the seed defaults), pick a
brand template, and export the result as a PNG image or a raw ESC/POS
job for a thermal printer.`,
	SilenceUsage: true,
}

func main() {
	// A .env file is optional for the CLI
	_ = godotenv.Load()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}
	if err := logger.Setup(logger.Config{Level: logLevel, Format: "console"}); err != nil {
		fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
