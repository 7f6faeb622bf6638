package parser

import "github.com/insightdelivered/statement-extractor/internal/models"

// ItauParser handles Itaú credit card statements.
//
// Lançamentos are listed under "Lançamentos: compras e saques" and
// "Lançamentos: produtos e serviços". The "Compras parceladas - próximas
// faturas" block that follows repeats future installments and is not read.
//
// The PDF prints two columns side by side, so one text line may hold two
// transactions:
//
//	"05/07 RESTAURANTE SABOR 89,90 06/07 POSTO SHELL 03/05 200,00"
//
// Amounts may carry a trailing minus ("50,00-") and advance payments show
// up as "VALOR ANTECIPADO".
type ItauParser struct{}

func (p *ItauParser) Name() string {
	return "Itaú"
}

var (
	itauStart = []string{"Lançamentos: compras e saques", "Lançamentos: produtos e serviços"}
	itauEnd   = []string{"Compras parceladas - próximas faturas", "Total dos lançamentos atuais"}
)

func (p *ItauParser) Extract(lines []string) []models.Transaction {
	transactions := []models.Transaction{}
	section := NewSection(itauStart, itauEnd)
	for _, raw := range lines {
		line := normalizeLine(raw)
		if !section.Feed(line) || !startsWithShortDate(line) {
			continue
		}
		for _, column := range splitItauColumns(splitFields(line)) {
			m, ok := scanTokens(column, scanOptions{dateTokens: 1})
			if !ok {
				continue
			}
			if txn, ok := (emitter{}).emit(m, joinFields(column)); ok {
				transactions = append(transactions, txn)
			}
		}
	}
	return transactions
}

// splitItauColumns cuts a token line at every date token that directly
// follows an amount, which is where the right-hand column begins.
func splitItauColumns(tokens []string) [][]string {
	var columns [][]string
	start := 0
	for i := 1; i < len(tokens); i++ {
		if datePatternShort.MatchString(tokens[i]) && isAmountToken(tokens[i-1]) {
			columns = append(columns, tokens[start:i])
			start = i
		}
	}
	return append(columns, tokens[start:])
}
