package parser

import "github.com/insightdelivered/statement-extractor/internal/models"

// SantanderParser handles Santander credit card statements.
//
// The transaction table follows "Detalhamento da Fatura" (or the per-card
// "TRANSAÇÕES REALIZADAS PELO TITULAR" heading) and ends at the invoice
// summary. Installment markers are often glued to the merchant name:
//
//	"03/07 PARC=112REDLAR HIP07/12 150,00"
//	"10/07 PAGAMENTO DE FATURA - 1.500,00"
//
// Documents in the older "Extrato Consolidado Inteligente" layout are not
// supported and yield no transactions.
type SantanderParser struct{}

func (p *SantanderParser) Name() string {
	return "Santander"
}

var (
	santanderStart  = []string{"Detalhamento da Fatura", "TRANSAÇÕES REALIZADAS PELO TITULAR"}
	santanderEnd    = []string{"Resumo da Fatura", "Resumo dos encargos financeiros"}
	santanderLegacy = []string{"EXTRATO CONSOLIDADO INTELIGENTE"}
)

func (p *SantanderParser) Extract(lines []string) []models.Transaction {
	transactions := []models.Transaction{}
	for _, line := range lines {
		if containsAny(line, santanderLegacy) {
			return transactions
		}
	}

	section := NewSection(santanderStart, santanderEnd)
	for _, raw := range lines {
		line := normalizeLine(raw)
		if !section.Feed(line) || !startsWithShortDate(line) {
			continue
		}
		m, ok := scanTokens(splitFields(line), scanOptions{dateTokens: 1, embedded: true})
		if !ok {
			continue
		}
		if txn, ok := (emitter{}).emit(m, line); ok {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}
