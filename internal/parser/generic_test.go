package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericParser_Extract(t *testing.T) {
	p := &GenericParser{}

	text := `FATURA DO CARTAO
Data Estabelecimento Valor
25/07 ANUIDADE DIFERENCIADA 01/12 113,33
26/07 PAGAMENTO EFETUADO 500,00
27/07 ESTORNO LOJA X - 30,00
28/07 LOJA SEM VALOR
29/07 MERCADO PAO DE ACUCAR R$ 1.265,53
30/07 TOTAL DA FATURA 1.848,86
01/08/2024 DATA LONGA 10,00`

	got := p.Extract(textLines(text))
	require.Len(t, got, 4)

	assert.Equal(t, "25/07", got[0].Date)
	assert.Equal(t, "ANUIDADE DIFERENCIADA", got[0].Establishment)
	requireInstallment(t, "01/12", got[0])
	assert.Equal(t, "113.33", got[0].Amount)

	assert.Equal(t, "PAGAMENTO EFETUADO", got[1].Establishment)
	assert.Nil(t, got[1].Installment)
	assert.Equal(t, "-500.00", got[1].Amount)

	assert.Equal(t, "ESTORNO LOJA X", got[2].Establishment)
	assert.Equal(t, "-30.00", got[2].Amount)

	assert.Equal(t, "MERCADO PAO DE ACUCAR", got[3].Establishment)
	assert.Equal(t, "1265.53", got[3].Amount)
}

func TestGenericParser_SignedAmount(t *testing.T) {
	got := (&GenericParser{}).Extract([]string{"02/08 AJUSTE - 100,00", "03/08 AJUSTE 2 100,00-"})
	require.Len(t, got, 2)
	assert.Equal(t, "-100.00", got[0].Amount)
	assert.Equal(t, "-100.00", got[1].Amount)
}
