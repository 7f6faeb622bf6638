package parser

import (
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// Parser converts the text lines of one statement into raw transactions.
type Parser interface {
	// Extract scans lines and returns every transaction found, in order.
	// Lines that cannot be parsed are skipped; it never fails.
	Extract(lines []string) []models.Transaction
	// Name returns the human-readable layout name.
	Name() string
}

// New returns the parser registered for importModel. Matching ignores case;
// unknown or empty identifiers get a parser that always returns nothing.
func New(importModel string) Parser {
	m, ok := models.ParseImportModel(importModel)
	if !ok {
		return noopParser{}
	}
	return ForModel(m)
}

// ForModel returns the parser for a known import model.
func ForModel(m models.ImportModel) Parser {
	switch m {
	case models.ModelGeneric:
		return &GenericParser{}
	case models.ModelSantander:
		return &SantanderParser{}
	case models.ModelItau:
		return &ItauParser{}
	case models.ModelNubank:
		return &NubankParser{}
	case models.ModelInter:
		return &InterParser{}
	case models.ModelMercadoPago:
		return &MercadoPagoParser{}
	case models.ModelBB:
		return &BBParser{}
	case models.ModelC6:
		return &C6Parser{}
	default:
		return noopParser{}
	}
}

// noopParser is used for unrecognized import models.
type noopParser struct{}

func (noopParser) Extract([]string) []models.Transaction { return []models.Transaction{} }
func (noopParser) Name() string                         { return "Unsupported" }

// SplitLines turns extracted pages into one ordered line sequence.
func SplitLines(pages []string) []string {
	var lines []string
	for _, page := range pages {
		page = strings.ReplaceAll(page, "\r\n", "\n")
		lines = append(lines, strings.Split(page, "\n")...)
	}
	return lines
}

// detectors maps bank identifiers found in statement text to import models.
// Order matters: more specific names come first.
var detectors = []struct {
	model   models.ImportModel
	needles []string
}{
	{models.ModelMercadoPago, []string{"Mercado Pago", "mercadopago.com"}},
	{models.ModelNubank, []string{"Nu Pagamentos", "nubank.com.br"}},
	{models.ModelInter, []string{"Banco Inter", "bancointer.com.br"}},
	{models.ModelC6, []string{"C6 Bank", "Banco C6"}},
	{models.ModelSantander, []string{"Santander"}},
	{models.ModelItau, []string{"Itaú", "itau.com.br"}},
	{models.ModelBB, []string{"Banco do Brasil", "bb.com.br"}},
}

// AutoDetect tries to identify the import model from the statement content.
func AutoDetect(lines []string) (models.ImportModel, bool) {
	combined := strings.Join(lines, "\n")
	for _, d := range detectors {
		if containsAny(combined, d.needles) {
			return d.model, true
		}
	}
	return "", false
}
