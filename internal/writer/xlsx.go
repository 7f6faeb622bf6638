package writer

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// XLSXSheet is the name of the worksheet holding the transactions.
const XLSXSheet = "Transacoes"

// numFmtAmount is the built-in "#,##0.00" number format.
const numFmtAmount = 4

// XLSXWriter writes transactions to an Excel workbook. Amounts are stored as
// numbers so the spreadsheet can sum them.
type XLSXWriter struct {
	IncludeHeader bool
}

// Write writes stmt as a single-sheet workbook.
func (w *XLSXWriter) Write(out io.Writer, stmt *models.Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	row := 1
	if w.IncludeHeader {
		if stmt.Model != "" {
			if err := setRow(f, row, "# Import Model", string(stmt.Model)); err != nil {
				return err
			}
			row++
		}
		if stmt.RunID != "" {
			if err := setRow(f, row, "# Run", stmt.RunID); err != nil {
				return err
			}
			row++
		}
	}

	if err := setRow(f, row, "Date", "Establishment", "Installment", "Amount"); err != nil {
		return err
	}
	row++

	for _, txn := range stmt.Transactions {
		var amount interface{} = txn.Amount
		if d, err := decimal.NewFromString(txn.Amount); err == nil {
			amount = d.InexactFloat64()
		}
		if err := setRow(f, row, txn.Date, txn.Establishment, txn.InstallmentString(), amount); err != nil {
			return err
		}
		row++
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtAmount})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}
	if err := f.SetColStyle(XLSXSheet, "D", style); err != nil {
		return fmt.Errorf("failed to style amount column: %w", err)
	}
	if err := f.SetColWidth(XLSXSheet, "B", "B", 40); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(XLSXSheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write XLSX row %d: %w", row, err)
	}
	return nil
}
