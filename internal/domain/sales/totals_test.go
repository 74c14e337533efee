package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/erp-mes-api/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotals_DocumentoSimple(t *testing.T) {
	totals, err := ComputeTotals([]Line{
		{Quantity: dec("2"), UnitPrice: dec("100"), VATRate: dec("20")},
		{Quantity: dec("1"), UnitPrice: dec("50"), VATRate: dec("10")},
	})
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(dec("250")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.VATTotal.Equal(dec("45")), "iva %s", totals.VATTotal)
	assert.True(t, totals.GrandTotal.Equal(dec("295")), "total %s", totals.GrandTotal)
}

func TestComputeTotals_RedondeoADosDecimales(t *testing.T) {
	totals, err := ComputeTotals([]Line{
		{Quantity: dec("3"), UnitPrice: dec("33.333"), VATRate: dec("19")},
	})
	require.NoError(t, err)
	// 3*33.333 = 99.999 → 100.00; IVA 18.99981 → 19.00; total 118.99881 → 119.00
	assert.True(t, totals.Subtotal.Equal(dec("100.00")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.VATTotal.Equal(dec("19.00")), "iva %s", totals.VATTotal)
	assert.True(t, totals.GrandTotal.Equal(dec("119.00")), "total %s", totals.GrandTotal)
}

func TestComputeTotals_ListaVacia(t *testing.T) {
	totals, err := ComputeTotals(nil)
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.VATTotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestComputeTotals_CantidadNegativaRechazada(t *testing.T) {
	_, err := ComputeTotals([]Line{
		{Quantity: dec("-1"), UnitPrice: dec("10"), VATRate: dec("20")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeTotals_PrecioNegativoRechazado(t *testing.T) {
	_, err := ComputeTotals([]Line{
		{Quantity: dec("1"), UnitPrice: dec("-10"), VATRate: dec("20")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLineTotal_ConIVAIncluido(t *testing.T) {
	got := LineTotal(Line{Quantity: dec("2"), UnitPrice: dec("100"), VATRate: dec("20")})
	assert.True(t, got.Equal(dec("240")), "esperado 240, obtenido %s", got)
}
