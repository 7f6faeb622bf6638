// Package statement wires document text extraction, the layout parsers and
// consolidation into one call.
package statement

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/statement-extractor/internal/consolidate"
	"github.com/insightdelivered/statement-extractor/internal/extractor"
	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/parser"
)

// Service extracts transactions from statements. It holds no per-call
// state and is safe for concurrent use.
type Service struct {
	log zerolog.Logger
}

// NewService returns a Service logging to log.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log}
}

// Extract runs the parser selected by importModel over lines and
// consolidates the result. Unknown models produce an empty statement.
func (s *Service) Extract(lines []string, importModel string) *models.Statement {
	runID := uuid.NewString()
	p := parser.New(importModel)
	raw := p.Extract(lines)
	txns := consolidate.Transactions(raw)

	model, _ := models.ParseImportModel(importModel)
	s.log.Debug().
		Str("run_id", runID).
		Str("import_model", importModel).
		Str("parser", p.Name()).
		Int("lines", len(lines)).
		Int("raw", len(raw)).
		Int("transactions", len(txns)).
		Msg("statement extracted")

	return &models.Statement{
		RunID:        runID,
		Model:        model,
		Lines:        len(lines),
		Raw:          len(raw),
		Transactions: txns,
	}
}

// ExtractPages splits extracted pages into lines and runs Extract.
func (s *Service) ExtractPages(pages []string, importModel string) *models.Statement {
	return s.Extract(parser.SplitLines(pages), importModel)
}

// ExtractFile reads the PDF at path and extracts its transactions.
// Failing to read the document is the only error.
func (s *Service) ExtractFile(path, importModel string) (*models.Statement, error) {
	pages, err := extractor.ExtractFile(path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("document read failed")
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	return s.ExtractPages(pages, importModel), nil
}

// ExtractDocument reads a PDF from r and extracts its transactions.
func (s *Service) ExtractDocument(r io.ReaderAt, size int64, importModel string) (*models.Statement, error) {
	pages, err := extractor.ExtractReader(r, size)
	if err != nil {
		s.log.Warn().Err(err).Int64("size", size).Msg("document read failed")
		return nil, fmt.Errorf("extracting document: %w", err)
	}
	return s.ExtractPages(pages, importModel), nil
}

// Detect guesses the import model from the statement text.
func (s *Service) Detect(lines []string) (models.ImportModel, bool) {
	return parser.AutoDetect(lines)
}
