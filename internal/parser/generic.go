package parser

import "github.com/insightdelivered/statement-extractor/internal/models"

// GenericParser handles card statements with one transaction per line and
// no section markers.
//
// Layout: DD/MM  ESTABLISHMENT  [NN/MM]  AMOUNT
//
// Example: "25/07 ANUIDADE DIFERENCIADA 01/12 113,33"
type GenericParser struct{}

func (p *GenericParser) Name() string {
	return "Generic card statement"
}

func (p *GenericParser) Extract(lines []string) []models.Transaction {
	transactions := []models.Transaction{}
	for _, raw := range lines {
		line := normalizeLine(raw)
		if !startsWithShortDate(line) {
			continue
		}
		m, ok := scanTokens(splitFields(line), scanOptions{dateTokens: 1})
		if !ok {
			continue
		}
		if txn, ok := (emitter{}).emit(m, line); ok {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}
