package parser

import (
	"strings"
	"unicode"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// BBParser handles Banco do Brasil account statements.
//
// Columns: Dia | Histórico | Documento | Valor | C/D
//
//	"02/07/2024 PIX - ENVIADO Padaria Pão Quente 150,00 D"
//	"05/07/2024 TED RECEBIDA 1.200,00 C"
//
// The HISTÓRICO column is an upper-case transaction code; the free text
// after it is the counterparty. Balance rows ("Saldo Anterior", "S A L D O")
// are not transactions.
type BBParser struct{}

func (p *BBParser) Name() string {
	return "Banco do Brasil"
}

var (
	bbStart   = []string{"Lançamentos"}
	bbEnd     = []string{"S A L D O", "Saldo final"}
	bbBalance = []string{"SALDO"}
)

func (p *BBParser) Extract(lines []string) []models.Transaction {
	transactions := []models.Transaction{}
	section := NewSection(bbStart, bbEnd)
	// C/D indicators decide the sign; "Pagamento de boleto" is still a debit.
	emit := emitter{signedLayout: true}

	for _, raw := range lines {
		line := normalizeLine(raw)
		if !section.Feed(line) || !startsWithFullDate(line) || containsAny(line, bbBalance) {
			continue
		}

		tokens := splitFields(line)
		credit := false
		if n := len(tokens); n > 0 {
			switch strings.ToUpper(tokens[n-1]) {
			case "C":
				credit = true
				tokens = tokens[:n-1]
			case "D":
				tokens = tokens[:n-1]
			}
		}

		m, ok := scanTokens(tokens, scanOptions{dateTokens: 1})
		if !ok {
			continue
		}
		m.establishment = bbEstablishment(m.establishment)
		m.amount = forcePositive(m.amount)
		m.credit = credit
		if txn, ok := emit.emit(m, line); ok {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}

// bbEstablishment splits the HISTÓRICO code from the description. The code
// is the leading run of tokens without lower-case letters; document numbers
// (all digits) between the two are dropped. When both parts are present the
// description is used, otherwise whichever is not empty.
func bbEstablishment(text string) string {
	tokens := strings.Fields(text)
	split := 0
	for split < len(tokens) && !hasLower(tokens[split]) {
		split++
	}
	code := cleanEstablishment(joinFields(dropDocumentNumbers(tokens[:split])))
	description := cleanEstablishment(joinFields(tokens[split:]))
	if description != "" {
		return description
	}
	return code
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func dropDocumentNumbers(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if strings.IndexFunc(tok, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
			continue
		}
		out = append(out, tok)
	}
	return out
}
