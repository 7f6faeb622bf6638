package parser

import "github.com/insightdelivered/statement-extractor/internal/models"

// NubankParser handles Nubank credit card statements.
//
// Transactions follow the "TRANSAÇÕES DE 05 JUN A 05 JUL" heading. The PDF
// text often breaks the value onto its own line:
//
//	"12 JUN Mercado Livre - Parcela 03 de 10"
//	"R$ 45,90"
//	"15 JUN Pagamento recebido"
//	"-R$ 1.000,00"
//
// A value line that belongs to no transaction is the invoice total and ends
// the table.
type NubankParser struct{}

func (p *NubankParser) Name() string {
	return "Nubank"
}

const nubankWindow = 2

var (
	nubankStart = []string{"TRANSAÇÕES DE"}
	nubankEnd   = []string{"Resumo da Fatura", "Pagamentos e Financiamentos"}
)

func (p *NubankParser) Extract(lines []string) []models.Transaction {
	transactions := []models.Transaction{}
	section := NewSection(nubankStart, nubankEnd)
	section.EndIf = IsLoneTotal
	stop := func(l string) bool { return startsWithDate(l) || section.IsEnd(l) }

	cursor := newLineCursor(lines)
	for line, ok := cursor.Next(); ok; line, ok = cursor.Next() {
		if !section.Feed(line) || !startsWithMonthDate(line) {
			continue
		}
		tokens := splitFields(line)
		if m, ok := scanTokens(tokens, scanOptions{dateTokens: 2, embedded: true}); ok {
			if txn, ok := (emitter{}).emit(m, line); ok {
				transactions = append(transactions, txn)
			}
			continue
		}

		idx, amountLine, found := cursor.Lookahead(nubankWindow, isAmountLine, stop)
		if !found {
			continue
		}
		cursor.Consume(idx)

		m := match{date: joinFields(tokens[:2])}
		m.establishment, m.installment = splitEstablishment(tokens[2:], true)
		m.amount, m.credit, _ = parseAmountLine(amountLine)
		if txn, ok := (emitter{}).emit(m, line+" "+amountLine); ok {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}
