package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mswatii/shoecard/internal/logging"
)

var (
	// Global flags
	catalogSource string
	themeFile     string
	nowFlag       string
	verbose       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shoecard",
	Short: "Render shoe catalog cards in the terminal",
	Long: `shoecard reads a catalog feed (file path or http URL) and shows each
shoe the way its product card would: sale and new-release badges, struck
base prices and sale prices.

Badges depend on when the cards are evaluated: a shoe counts as new for 30
days after its release. Pass --now to view the catalog as of another
moment, for example --now 2026-10-15T00:00:00Z to see the sample feed's
new releases.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync() //nolint:errcheck
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogSource, "catalog", "c", "data/shoes.json", "catalog file path or http(s) URL")
	rootCmd.PersistentFlags().StringVar(&themeFile, "theme", "", "YAML theme file")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "evaluate cards at this RFC3339 time instead of the current time")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(renderCmd, classifyCmd)
}

// evaluationTime returns --now if given, the wall clock otherwise
func evaluationTime() (time.Time, error) {
	if nowFlag == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, nowFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}
	return t, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
