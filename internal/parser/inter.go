package parser

import (
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// InterParser handles Banco Inter account statements.
//
// Entries follow "Movimentações da conta" and carry a written-out date.
// The signed value sits on the same line or on one of the next two lines:
//
//	"12 de jan. 2024 Pix enviado: "Padaria Pão Quente""
//	"- R$ 150,00"
//	"13 de jan. 2024 Pix recebido: "Fulano" + R$ 300,00"
//
// On an account statement "-" is money leaving the account, which is a
// purchase, and "+" is money coming in, which is a credit.
type InterParser struct{}

func (p *InterParser) Name() string {
	return "Banco Inter"
}

const interWindow = 2

var (
	interStart = []string{"Movimentações da conta"}
	interEnd   = []string{"Saldo final", "Fale com a gente"}
)

func (p *InterParser) Extract(lines []string) []models.Transaction {
	transactions := []models.Transaction{}
	section := NewSection(interStart, interEnd)
	stop := func(l string) bool { return startsWithDate(l) || section.IsEnd(l) }
	// The amount sign is authoritative here, so keyword credit detection is off.
	emit := emitter{signedLayout: true}

	cursor := newLineCursor(lines)
	for line, ok := cursor.Next(); ok; line, ok = cursor.Next() {
		if !section.Feed(line) {
			continue
		}
		date := leadingDate(datePatternVerbose, line)
		if date == "" {
			continue
		}
		tokens := splitFields(line)
		dateTokens := len(strings.Fields(date))

		m, ok := scanTokens(tokens, scanOptions{dateTokens: dateTokens})
		if !ok {
			idx, amountLine, found := cursor.Lookahead(interWindow, isAmountLine, stop)
			if !found {
				continue
			}
			cursor.Consume(idx)
			m = match{date: date}
			m.establishment, m.installment = splitEstablishment(tokens[dateTokens:], false)
			m.amount, m.credit, _ = parseAmountLine(amountLine)
		}

		m.establishment = cleanEstablishment(strings.ReplaceAll(m.establishment, `"`, ""))
		if m.credit {
			m.amount = forceNegative(m.amount)
		} else {
			m.amount = forcePositive(m.amount)
		}
		m.credit = false
		if txn, ok := emit.emit(m, line); ok {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}
