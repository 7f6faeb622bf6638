package parser

import (
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// C6Parser handles C6 Bank card statements exported with written-out dates.
//
//	"12 de jan. 2024 UBER *TRIP 45,90"
//	"15 de jan. 2024 AMAZON MARKETPLACE - Parcela 02 de 06 120,00"
//	"20 de jan. 2024 Inclusao de Pagamento 1.500,00"
type C6Parser struct{}

func (p *C6Parser) Name() string {
	return "C6 Bank"
}

func (p *C6Parser) Extract(lines []string) []models.Transaction {
	transactions := []models.Transaction{}
	for _, raw := range lines {
		line := normalizeLine(raw)
		date := leadingDate(datePatternVerbose, line)
		if date == "" {
			continue
		}
		opts := scanOptions{dateTokens: len(strings.Fields(date)), embedded: true}
		m, ok := scanTokens(splitFields(line), opts)
		if !ok {
			continue
		}
		if txn, ok := (emitter{}).emit(m, line); ok {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}
