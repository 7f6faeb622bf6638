package parser

import (
	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// match is one transaction candidate found on a line or line window.
type match struct {
	date          string
	establishment string
	installment   *string
	amount        string // canonical, sign as printed
	credit        bool   // layout marked the entry as a credit
}

// scanOptions tunes the backward token scan.
type scanOptions struct {
	// dateTokens is the number of leading tokens that make up the date.
	dateTokens int
	// embedded enables a search for installment markers glued to the
	// merchant name when no standalone marker token exists.
	embedded bool
}

// scanTokens walks tokens from the end looking for the amount, then for an
// installment marker between the date and the amount. Whatever remains
// between the date and those tokens is the establishment.
func scanTokens(tokens []string, opts scanOptions) (match, bool) {
	if len(tokens) <= opts.dateTokens {
		return match{}, false
	}

	amountIdx := -1
	for i := len(tokens) - 1; i >= opts.dateTokens; i-- {
		if isAmountToken(tokens[i]) {
			amountIdx = i
			break
		}
	}
	if amountIdx < 0 {
		return match{}, false
	}

	m := match{
		date:   joinFields(tokens[:opts.dateTokens]),
		amount: NormalizeAmount(tokens[amountIdx]),
	}

	boundary := amountIdx
	if boundary-1 >= opts.dateTokens && tokens[boundary-1] == "R$" {
		boundary--
	}
	if boundary-1 >= opts.dateTokens {
		switch tokens[boundary-1] {
		case "-":
			m.amount = FoldSign("-", m.amount)
			boundary--
		case "+":
			m.credit = true
			boundary--
		}
	}

	m.establishment, m.installment = splitEstablishment(tokens[opts.dateTokens:boundary], opts.embedded)
	return m, true
}

// splitEstablishment separates the installment marker from the merchant
// tokens. A standalone "NN/MM" token wins; otherwise, when embedded is set,
// the joined text is searched for a marker glued to a word or written out
// as "Parcela NN de MM".
func splitEstablishment(body []string, embedded bool) (string, *string) {
	instIdx := -1
	for i := len(body) - 1; i >= 0; i-- {
		if isInstallmentToken(body[i]) {
			instIdx = i
			break
		}
	}

	rest := make([]string, 0, len(body))
	for i, tok := range body {
		if i != instIdx {
			rest = append(rest, tok)
		}
	}
	establishment := joinFields(rest)

	var installment *string
	if instIdx >= 0 {
		inst := body[instIdx]
		installment = &inst
	} else if embedded {
		if inst := FindInstallment(establishment); inst != nil {
			installment = inst
			establishment = stripInstallment(establishment)
		}
	}
	return cleanEstablishment(establishment), installment
}

// emitter applies the edge policies shared by every layout before a
// candidate becomes a Transaction.
type emitter struct {
	// signedLayout disables credit detection by keyword for layouts that
	// print an explicit credit/debit indicator next to each amount.
	signedLayout bool
}

// emit turns m into a Transaction. Footer lines, missing amounts and
// amounts that do not parse as decimals yield nothing.
func (e emitter) emit(m match, line string) (models.Transaction, bool) {
	if m.amount == "" || IsFooter(line) {
		return models.Transaction{}, false
	}

	amount := m.amount
	if m.credit || (!e.signedLayout && IsCredit(line)) {
		amount = forceNegative(amount)
	}
	if _, err := decimal.NewFromString(amount); err != nil {
		return models.Transaction{}, false
	}

	return models.Transaction{
		Date:          m.date,
		Establishment: m.establishment,
		Installment:   m.installment,
		Amount:        amount,
	}, true
}

// parseAmountLine reads a line that holds only a currency amount, such as
// "R$ 45,90", "- R$ 1.000,00" or "+ R$ 300,00".
func parseAmountLine(line string) (amount string, credit bool, ok bool) {
	m := amountLinePattern.FindStringSubmatch(normalizeLine(line))
	if m == nil {
		return "", false, false
	}
	amount = NormalizeAmount(m[2])
	switch m[1] {
	case "-":
		amount = FoldSign("-", amount)
	case "+":
		credit = true
	}
	return amount, credit, true
}

// isAmountLine reports whether line holds only a currency amount.
func isAmountLine(line string) bool {
	_, _, ok := parseAmountLine(line)
	return ok
}
