package models

import "strings"

// Transaction represents a single statement entry.
type Transaction struct {
	Date          string  `json:"date"` // format depends on the import model
	Establishment string  `json:"establishment"`
	Installment   *string `json:"installment"` // "NN/MM" or nil
	Amount        string  `json:"amount"`      // canonical decimal, negative = credit
}

// HasInstallment reports whether the transaction belongs to an installment plan.
func (t Transaction) HasInstallment() bool {
	return t.Installment != nil && *t.Installment != ""
}

// InstallmentString returns the installment marker or "".
func (t Transaction) InstallmentString() string {
	if t.Installment == nil {
		return ""
	}
	return *t.Installment
}

// ImportModel identifies the statement layout a document was produced with.
type ImportModel string

const (
	ModelGeneric     ImportModel = "generic"
	ModelSantander   ImportModel = "santander"
	ModelItau        ImportModel = "itau"
	ModelNubank      ImportModel = "nubank"
	ModelInter       ImportModel = "inter"
	ModelMercadoPago ImportModel = "mercadopago"
	ModelBB          ImportModel = "bb"
	ModelC6          ImportModel = "c6"
)

// ImportModels lists every supported layout in registration order.
var ImportModels = []ImportModel{
	ModelGeneric,
	ModelSantander,
	ModelItau,
	ModelNubank,
	ModelInter,
	ModelMercadoPago,
	ModelBB,
	ModelC6,
}

// ParseImportModel maps a caller supplied identifier to a known model.
// Matching ignores case and surrounding blanks.
func ParseImportModel(s string) (ImportModel, bool) {
	key := ImportModel(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range ImportModels {
		if m == key {
			return m, true
		}
	}
	return "", false
}

// Statement holds the result of one extraction run.
type Statement struct {
	RunID        string        `json:"runId"`
	Model        ImportModel   `json:"model"`
	Lines        int           `json:"lines"`
	Raw          int           `json:"raw"` // transactions before consolidation
	Transactions []Transaction `json:"transactions"`
}
