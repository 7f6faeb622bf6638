// Package consolidate collapses installment rows that statements repeat.
//
// Card statements list every open installment plan again each month, and a
// single export can carry the same purchase several times with different
// installment counters. Rows are grouped by date, establishment and the
// integer part of the amount, and the row with the lowest current
// installment is kept.
package consolidate

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

type groupKey struct {
	date          string
	establishment string
	amount        string
}

// Transactions returns in with repeated installment rows collapsed.
// Rows without an installment pass through untouched. Each kept row takes
// the position of the first row of its group; nothing is re-sorted. When
// several rows share the lowest installment the first one seen is kept.
func Transactions(in []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(in))
	groups := make(map[groupKey]int)

	for _, txn := range in {
		if !txn.HasInstallment() {
			out = append(out, txn)
			continue
		}

		key := groupKey{
			date:          txn.Date,
			establishment: txn.Establishment,
			amount:        TruncatedAmount(txn.Amount),
		}
		idx, seen := groups[key]
		if !seen {
			groups[key] = len(out)
			out = append(out, txn)
			continue
		}
		if CurrentInstallment(txn.InstallmentString()) < CurrentInstallment(out[idx].InstallmentString()) {
			out[idx] = txn
		}
	}
	return out
}

// TruncatedAmount drops the fractional part of a canonical amount so that
// rounding noise between reprints does not split a group.
func TruncatedAmount(amount string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		whole, _, _ := strings.Cut(amount, ".")
		return whole
	}
	return d.Truncate(0).String()
}

// CurrentInstallment parses the number before "/" in an installment marker.
// Malformed markers sort last.
func CurrentInstallment(installment string) int {
	current, _, _ := strings.Cut(installment, "/")
	n, err := strconv.Atoi(strings.TrimSpace(current))
	if err != nil {
		return math.MaxInt
	}
	return n
}
