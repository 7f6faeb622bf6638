package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/insightdelivered/statement-extractor/internal/buildinfo"
	"github.com/insightdelivered/statement-extractor/internal/config"
	"github.com/insightdelivered/statement-extractor/internal/logger"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "statement-extractor",
		Short: "Extract transactions from Brazilian bank and card statements",
		Long: `Reads bank and credit-card statements (PDF or extracted text) and
emits one row per transaction: date, establishment, installment and amount.

Purchases are positive, payments and refunds are negative. Repeated
installment lines of the same purchase collapse into the lowest one.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath, "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config and LOG_LEVEL)")

	rootCmd.AddCommand(newExtractCommand(flags))
	rootCmd.AddCommand(newModelsCommand())
	rootCmd.AddCommand(newServeCommand(flags))

	return rootCmd
}

// load reads the configuration and builds the logger it describes.
// Logs go to stderr so stdout stays clean for extracted data.
func (f *globalFlags) load(stderr io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadOrDefault(f.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level := logger.LevelFromEnv(cfg.Log.Level)
	if f.logLevel != "" {
		level = logger.ParseLevel(f.logLevel)
	}

	var log zerolog.Logger
	if cfg.Log.JSON {
		log = logger.NewJSON(stderr, level)
	} else {
		log = logger.New(stderr, level)
	}
	return cfg, log, nil
}
