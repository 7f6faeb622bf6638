package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/insightdelivered/statement-extractor/internal/config"
	"github.com/insightdelivered/statement-extractor/internal/extractor"
	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/parser"
	"github.com/insightdelivered/statement-extractor/internal/statement"
	"github.com/insightdelivered/statement-extractor/internal/writer"
)

const modelAuto = "auto"

type extractOptions struct {
	model  string
	card   string
	format string
	output string
	header bool
}

func newExtractCommand(flags *globalFlags) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <statement> [statement ...]",
		Short: "Extract transactions from statement files",
		Long: `Extract transactions from PDF statements or from text files holding
already extracted statement text (.txt). Use "-" to read text from stdin.

The layout is chosen with --model, or with --card when the card is listed
in the configuration file. --model auto guesses it from the text.`,
		Example: `  statement-extractor extract --model nubank fatura.pdf
  statement-extractor extract --card "Itau Visa" --format json jan.pdf feb.pdf
  pdftotext -layout fatura.pdf - | statement-extractor extract --model santander -o - -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runExtract(cmd, cfg, log, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "import model (see 'models'), or 'auto'")
	cmd.Flags().StringVar(&opts.card, "card", "", "card name from the configuration file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(writer.FormatCSV), "output format: csv, json or xlsx")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, '-' for stdout (defaults to input name with the format's extension)")
	cmd.Flags().BoolVar(&opts.header, "header", true, "include metadata rows in CSV output")
	cmd.MarkFlagsMutuallyExclusive("model", "card")

	return cmd
}

func runExtract(cmd *cobra.Command, cfg *config.Config, log zerolog.Logger, opts *extractOptions, inputs []string) error {
	model, err := resolveModel(cfg, opts.model, opts.card)
	if err != nil {
		return err
	}
	if len(inputs) > 1 && opts.output != "" && opts.output != "-" {
		return fmt.Errorf("--output can only name a file when extracting a single statement")
	}

	w, err := writer.New(writer.Format(strings.ToLower(opts.format)), opts.header)
	if err != nil {
		return err
	}

	svc := statement.NewService(log)
	var failed int
	for _, input := range inputs {
		stmt, err := extractInput(cmd.InOrStdin(), svc, input, model)
		if err != nil {
			log.Error().Err(err).Str("input", input).Msg("extraction failed")
			failed++
			continue
		}

		output := outputPath(input, opts.output, opts.format)
		if output == "-" {
			err = w.Write(cmd.OutOrStdout(), stmt)
		} else {
			err = writer.WriteToFile(w, output, stmt)
		}
		if err != nil {
			log.Error().Err(err).Str("input", input).Msg("writing output failed")
			failed++
			continue
		}

		log.Info().
			Str("input", input).
			Str("output", output).
			Str("model", string(stmt.Model)).
			Int("transactions", len(stmt.Transactions)).
			Msg("extracted")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d statements failed", failed, len(inputs))
	}
	return nil
}

// resolveModel picks the import model from the flags. An unknown --model is
// not an error here: it extracts nothing, the same as the library does.
func resolveModel(cfg *config.Config, model, card string) (string, error) {
	if card != "" {
		m, ok := cfg.ModelForCard(card)
		if !ok {
			return "", fmt.Errorf("card %q is not in the configuration", card)
		}
		return m, nil
	}
	if model == "" {
		return "", fmt.Errorf("one of --model or --card is required")
	}
	return model, nil
}

func extractInput(stdin io.Reader, svc *statement.Service, input, model string) (*models.Statement, error) {
	var lines []string
	switch {
	case input == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		lines = parser.SplitLines([]string{string(data)})
	case strings.EqualFold(filepath.Ext(input), ".pdf"):
		if !strings.EqualFold(model, modelAuto) {
			return svc.ExtractFile(input, model)
		}
		pages, err := extractor.ExtractFile(input)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", input, err)
		}
		lines = parser.SplitLines(pages)
	default:
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", input, err)
		}
		lines = parser.SplitLines([]string{string(data)})
	}

	if strings.EqualFold(model, modelAuto) {
		detected, ok := svc.Detect(lines)
		if !ok {
			return nil, fmt.Errorf("could not detect the statement layout of %s; use --model", input)
		}
		model = string(detected)
	}
	return svc.Extract(lines, model), nil
}

// outputPath defaults to the input name with the format's extension, or
// stdout when reading from stdin.
func outputPath(input, output, format string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "-"
	}
	ext := "." + strings.ToLower(format)
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}
