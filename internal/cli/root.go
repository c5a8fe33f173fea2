package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/okapi/internal/config"
	"github.com/vijay-prabhu/okapi/internal/okapi"
	"github.com/vijay-prabhu/okapi/internal/output"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
	verbose    bool
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd scores the input file
var rootCmd = &cobra.Command{
	Use:   "okapi <file>",
	Short: "Rank CSV records by Okapi BM25 score",
	Long: `okapi computes a BM25 relevance score for every data row of a
comma-separated file and prints the rows sorted by score, highest first.

The first line is a header and is skipped. Each data line needs at least
six fields:

  0  identifier A      (text)
  1  identifier B      (text)
  2  term frequency    (number)
  3  weight            (number)
  4  unused            (number)
  5  length, % of avg  (number)

Output lines have the form "<score>, <idA>, <idB>".

Examples:
  okapi scores.csv               # Ranked lines on stdout
  okapi scores.csv -o table      # Ranked table
  okapi scores.csv -o json -v    # JSON with debug logs on stderr`,
	Args:          cobra.ExactArgs(1),
	RunE:          runScore,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (TOML); defaults apply when omitted")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "",
		"output format (text, table, json); overrides the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log pipeline progress to stderr")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies command line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if outputFmt != "" {
		cfg.Output.Format = outputFmt
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	path := args[0]
	logger.Debug().Str("path", path).Msg("scoring file")

	records, err := okapi.ScoreFile(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("scoring aborted")
		return err
	}

	logger.Debug().
		Int("records", len(records)).
		Str("format", cfg.Output.Format).
		Msg("writing ranked records")

	return output.Output(cmd.OutOrStdout(), cfg.Output.Format, records)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "okapi %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", buildTime)
	},
}
