package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindInstallment(t *testing.T) {
	tests := []struct {
		input    string
		expected string // "" means no marker
	}{
		{"ANUIDADE DIFERENCIADA 01/12", "01/12"},
		{"PARC=112REDLAR HIP07/12", "07/12"},
		{"Mercado Livre - Parcela 03 de 10", "03/10"},
		{"AMAZON parcela 02 DE 06", "02/06"},
		{"UBER *TRIP", ""},
		{"LOJA 1/2", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := FindInstallment(tt.input)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestStripInstallment(t *testing.T) {
	assert.Equal(t, "PARC=112REDLAR HIP", stripInstallment("PARC=112REDLAR HIP07/12"))
	assert.Equal(t, "Mercado Livre", stripInstallment("Mercado Livre - Parcela 03 de 10"))
	assert.Equal(t, "UBER", stripInstallment("UBER"))
}

func TestCleanEstablishment(t *testing.T) {
	assert.Equal(t, "LOJA X", cleanEstablishment("  LOJA   X - "))
	assert.Equal(t, "LOJA", cleanEstablishment("| LOJA |"))
	assert.Equal(t, "", cleanEstablishment(" - "))
}

func TestSplitEstablishment(t *testing.T) {
	est, inst := splitEstablishment([]string{"ANUIDADE", "DIFERENCIADA", "01/12"}, false)
	assert.Equal(t, "ANUIDADE DIFERENCIADA", est)
	require.NotNil(t, inst)
	assert.Equal(t, "01/12", *inst)

	est, inst = splitEstablishment([]string{"LOJA", "HIP07/12"}, false)
	assert.Equal(t, "LOJA HIP07/12", est)
	assert.Nil(t, inst)

	est, inst = splitEstablishment([]string{"LOJA", "HIP07/12"}, true)
	assert.Equal(t, "LOJA HIP", est)
	require.NotNil(t, inst)
	assert.Equal(t, "07/12", *inst)
}
