package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// Format selects the output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Writer writes extracted transactions.
type Writer interface {
	Write(out io.Writer, stmt *models.Statement) error
}

// New returns the writer for format.
func New(format Format, includeHeader bool) (Writer, error) {
	switch format {
	case FormatCSV, "":
		return &CSVWriter{IncludeHeader: includeHeader}, nil
	case FormatJSON:
		return &JSONWriter{Indent: true}, nil
	case FormatXLSX:
		return &XLSXWriter{IncludeHeader: includeHeader}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}

// WriteToFile writes stmt to the file at path using w.
func WriteToFile(w Writer, path string, stmt *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	if err := w.Write(f, stmt); err != nil {
		return err
	}
	return f.Close()
}

// CSVWriter writes transactions to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// Write writes transactions in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, stmt *models.Statement) error {
	writer := csv.NewWriter(out)

	if w.IncludeHeader {
		if stmt.Model != "" {
			writer.Write([]string{"# Import Model", string(stmt.Model)})
		}
		if stmt.RunID != "" {
			writer.Write([]string{"# Run", stmt.RunID})
		}
	}

	if err := writer.Write([]string{"Date", "Establishment", "Installment", "Amount"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range stmt.Transactions {
		row := []string{
			txn.Date,
			txn.Establishment,
			txn.InstallmentString(),
			txn.Amount,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// JSONWriter writes the statement as a JSON document.
type JSONWriter struct {
	Indent bool
}

// Write encodes stmt as JSON. A statement without transactions is written
// with an empty array, not null.
func (w *JSONWriter) Write(out io.Writer, stmt *models.Statement) error {
	doc := *stmt
	if doc.Transactions == nil {
		doc.Transactions = []models.Transaction{}
	}
	enc := json.NewEncoder(out)
	if w.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
