package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNubankParser_Extract(t *testing.T) {
	text := `Nu Pagamentos S.A.
TRANSAÇÕES DE 05 JUN A 05 JUL
12 JUN Mercado Livre - Parcela 03 de 10
R$ 45,90
13 JUN Uber *Trip R$ 23,10
15 JUN Pagamento recebido

-R$ 1.000,00
16 JUN Loja sem valor
17 JUN Spotify
R$ 21,90
R$ 1.234,56
20 JUN Depois do total
R$ 9,99`

	got := (&NubankParser{}).Extract(textLines(text))
	require.Len(t, got, 4)

	assert.Equal(t, "12 JUN", got[0].Date)
	assert.Equal(t, "Mercado Livre", got[0].Establishment)
	requireInstallment(t, "03/10", got[0])
	assert.Equal(t, "45.90", got[0].Amount)

	assert.Equal(t, "Uber *Trip", got[1].Establishment)
	assert.Equal(t, "23.10", got[1].Amount)

	assert.Equal(t, "Pagamento recebido", got[2].Establishment)
	assert.Equal(t, "-1000.00", got[2].Amount)

	assert.Equal(t, "Spotify", got[3].Establishment)
	assert.Equal(t, "21.90", got[3].Amount)
}

func TestNubankParser_EndsAtSummary(t *testing.T) {
	text := "TRANSAÇÕES DE 05 JUN A 05 JUL\n12 JUN Loja R$ 10,00\nResumo da Fatura\n13 JUN Outra R$ 20,00"
	got := (&NubankParser{}).Extract(textLines(text))
	require.Len(t, got, 1)
	assert.Equal(t, "10.00", got[0].Amount)
}
