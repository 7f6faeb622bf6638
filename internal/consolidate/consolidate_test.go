package consolidate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/statement-extractor/internal/consolidate"
	"github.com/insightdelivered/statement-extractor/internal/models"
)

func inst(s string) *string { return &s }

func TestTransactions_KeepsLowestInstallment(t *testing.T) {
	in := []models.Transaction{
		{Date: "03/07", Establishment: "REDLAR", Installment: inst("08/12"), Amount: "150.00"},
		{Date: "03/07", Establishment: "REDLAR", Installment: inst("07/12"), Amount: "150.00"},
		{Date: "03/07", Establishment: "REDLAR", Installment: inst("09/12"), Amount: "150.00"},
	}

	got := consolidate.Transactions(in)
	require.Len(t, got, 1)
	assert.Equal(t, "07/12", *got[0].Installment)
}

func TestTransactions_PassesThroughWithoutInstallment(t *testing.T) {
	in := []models.Transaction{
		{Date: "01/07", Establishment: "UBER", Amount: "10.00"},
		{Date: "01/07", Establishment: "UBER", Amount: "10.00"},
	}

	got := consolidate.Transactions(in)
	assert.Equal(t, in, got)
}

func TestTransactions_PreservesOrder(t *testing.T) {
	in := []models.Transaction{
		{Date: "01/07", Establishment: "A", Installment: inst("02/03"), Amount: "10.00"},
		{Date: "02/07", Establishment: "B", Amount: "5.00"},
		{Date: "01/07", Establishment: "A", Installment: inst("01/03"), Amount: "10.00"},
		{Date: "03/07", Establishment: "C", Installment: inst("01/02"), Amount: "7.00"},
	}

	got := consolidate.Transactions(in)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Establishment)
	assert.Equal(t, "01/03", *got[0].Installment)
	assert.Equal(t, "B", got[1].Establishment)
	assert.Equal(t, "C", got[2].Establishment)
}

func TestTransactions_GroupsByTruncatedAmount(t *testing.T) {
	in := []models.Transaction{
		{Date: "03/07", Establishment: "LOJA", Installment: inst("03/10"), Amount: "99.99"},
		{Date: "03/07", Establishment: "LOJA", Installment: inst("02/10"), Amount: "99.01"},
		{Date: "03/07", Establishment: "LOJA", Installment: inst("01/10"), Amount: "100.00"},
	}

	got := consolidate.Transactions(in)
	require.Len(t, got, 2)
	assert.Equal(t, "02/10", *got[0].Installment)
	assert.Equal(t, "99.01", got[0].Amount)
	assert.Equal(t, "100.00", got[1].Amount)
}

func TestTransactions_DifferentKeysStaySeparate(t *testing.T) {
	in := []models.Transaction{
		{Date: "03/07", Establishment: "LOJA", Installment: inst("01/10"), Amount: "50.00"},
		{Date: "04/07", Establishment: "LOJA", Installment: inst("02/10"), Amount: "50.00"},
		{Date: "03/07", Establishment: "OUTRA", Installment: inst("03/10"), Amount: "50.00"},
	}
	assert.Len(t, consolidate.Transactions(in), 3)
}

func TestTransactions_TieKeepsFirst(t *testing.T) {
	in := []models.Transaction{
		{Date: "03/07", Establishment: "LOJA", Installment: inst("01/10"), Amount: "50.10"},
		{Date: "03/07", Establishment: "LOJA", Installment: inst("01/10"), Amount: "50.90"},
	}

	got := consolidate.Transactions(in)
	require.Len(t, got, 1)
	assert.Equal(t, "50.10", got[0].Amount)
}

func TestTransactions_Empty(t *testing.T) {
	got := consolidate.Transactions(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTruncatedAmount(t *testing.T) {
	assert.Equal(t, "1265", consolidate.TruncatedAmount("1265.53"))
	assert.Equal(t, "-45", consolidate.TruncatedAmount("-45.90"))
	assert.Equal(t, "0", consolidate.TruncatedAmount("0.99"))
	assert.Equal(t, "abc", consolidate.TruncatedAmount("abc.12"))
}

func TestCurrentInstallment(t *testing.T) {
	assert.Equal(t, 7, consolidate.CurrentInstallment("07/12"))
	assert.Equal(t, 1, consolidate.CurrentInstallment("01/01"))
	assert.Equal(t, math.MaxInt, consolidate.CurrentInstallment("xx/12"))
	assert.Equal(t, math.MaxInt, consolidate.CurrentInstallment(""))
}
