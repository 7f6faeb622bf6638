package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// MercadoPagoParser handles Mercado Pago card statements.
//
// Each entry reads "ESTABLISHMENT [- NN/MM] DD/MM/YYYY R$ AMOUNT" and the
// text extraction may run several entries together on one line:
//
//	"Mercado Livre - 02/06 10/07/2024 R$ 89,90 Uber 12/07/2024 R$ 23,10"
//
// There are no section markers.
type MercadoPagoParser struct{}

func (p *MercadoPagoParser) Name() string {
	return "Mercado Pago"
}

var mercadoPagoEntry = regexp.MustCompile(
	`(\S.*?)(?:\s+-\s+(\d{2}/\d{2}))?\s+(\d{2}/\d{2}/\d{4})\s+([-+])?\s*R\$\s*(-?\d+(?:\.\d{3})*,\d{2})`,
)

func (p *MercadoPagoParser) Extract(lines []string) []models.Transaction {
	transactions := []models.Transaction{}
	for _, raw := range lines {
		line := normalizeLine(raw)
		for _, g := range mercadoPagoEntry.FindAllStringSubmatch(line, -1) {
			m := match{
				date:          g[3],
				establishment: cleanEstablishment(g[1]),
				amount:        NormalizeAmount(g[5]),
			}
			if g[2] != "" {
				inst := g[2]
				m.installment = &inst
			}
			switch g[4] {
			case "-":
				m.amount = FoldSign("-", m.amount)
			case "+":
				m.credit = true
			}
			if txn, ok := (emitter{}).emit(m, strings.TrimSpace(g[0])); ok {
				transactions = append(transactions, txn)
			}
		}
	}
	return transactions
}
