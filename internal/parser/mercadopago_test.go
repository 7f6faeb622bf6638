package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMercadoPagoParser_Extract(t *testing.T) {
	text := `Mercado Pago
Mercado Livre - 02/06 10/07/2024 R$ 89,90 Uber 12/07/2024 R$ 23,10
Pagamento da fatura 15/07/2024 R$ 500,00
Devolucao 16/07/2024 + R$ 15,00`

	got := (&MercadoPagoParser{}).Extract(textLines(text))
	require.Len(t, got, 4)

	assert.Equal(t, "10/07/2024", got[0].Date)
	assert.Equal(t, "Mercado Livre", got[0].Establishment)
	requireInstallment(t, "02/06", got[0])
	assert.Equal(t, "89.90", got[0].Amount)

	assert.Equal(t, "Uber", got[1].Establishment)
	assert.Nil(t, got[1].Installment)
	assert.Equal(t, "23.10", got[1].Amount)

	assert.Equal(t, "-500.00", got[2].Amount)
	assert.Equal(t, "-15.00", got[3].Amount)
}
