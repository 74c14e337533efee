package stock

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

func TestLedger_ApplyInbound_CreaBalancePerezoso(t *testing.T) {
	repo := newFakeBalanceRepo()
	ledger := NewLedger(repo)

	bal, err := ledger.ApplyInbound("itemX", "whA", dec("100"), dec("97"))
	require.NoError(t, err)
	assert.True(t, bal.Quantity.Equal(dec("100")))
	assert.True(t, bal.AvgCost.Equal(dec("97")))
}

func TestLedger_ApplyInbound_RecalculaPromedio(t *testing.T) {
	repo := newFakeBalanceRepo()
	ledger := NewLedger(repo)

	_, err := ledger.ApplyInbound("itemX", "whA", dec("100"), dec("97"))
	require.NoError(t, err)
	bal, err := ledger.ApplyInbound("itemX", "whA", dec("50"), dec("100"))
	require.NoError(t, err)

	// (100*97 + 50*100) / 150 = 98
	assert.True(t, bal.Quantity.Equal(dec("150")), "cantidad %s", bal.Quantity)
	assert.True(t, bal.AvgCost.Equal(dec("98")), "promedio %s", bal.AvgCost)
}

func TestLedger_ApplyInbound_CantidadNoPositivaRechazada(t *testing.T) {
	ledger := NewLedger(newFakeBalanceRepo())
	for _, qty := range []string{"0", "-5"} {
		_, err := ledger.ApplyInbound("itemX", "whA", dec(qty), dec("10"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "qty=%s", qty)
	}
}

func TestLedger_ApplyInbound_PrecioNegativoRechazado(t *testing.T) {
	ledger := NewLedger(newFakeBalanceRepo())
	_, err := ledger.ApplyInbound("itemX", "whA", dec("10"), dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedger_ApplyOutbound_DescuentaSinTocarCosto(t *testing.T) {
	repo := newFakeBalanceRepo()
	ledger := NewLedger(repo)
	_, err := ledger.ApplyInbound("itemX", "whA", dec("150"), dec("98"))
	require.NoError(t, err)

	bal, err := ledger.ApplyOutbound("itemX", "whA", dec("30"))
	require.NoError(t, err)
	assert.True(t, bal.Quantity.Equal(dec("120")))
	assert.True(t, bal.AvgCost.Equal(dec("98")), "el promedio no cambia en salidas")
}

func TestLedger_ApplyOutbound_StockInsuficienteDejaBalanceIntacto(t *testing.T) {
	repo := newFakeBalanceRepo()
	ledger := NewLedger(repo)
	_, err := ledger.ApplyInbound("itemX", "whA", dec("120"), dec("98"))
	require.NoError(t, err)

	_, err = ledger.ApplyOutbound("itemX", "whA", dec("200"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	bal, err := repo.Get("itemX", "whA")
	require.NoError(t, err)
	assert.True(t, bal.Quantity.Equal(dec("120")), "el balance queda como estaba")
	assert.True(t, bal.AvgCost.Equal(dec("98")))
}

func TestLedger_ApplyOutbound_SinBalanceEsInsuficiente(t *testing.T) {
	ledger := NewLedger(newFakeBalanceRepo())
	_, err := ledger.ApplyOutbound("fantasma", "whA", dec("1"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestLedger_CantidadNuncaNegativa(t *testing.T) {
	// Propiedad: tras cualquier secuencia de operaciones, ningún balance queda
	// por debajo de cero; toda salida que lo violaría se rechaza.
	repo := newFakeBalanceRepo()
	ledger := NewLedger(repo)

	ops := []struct {
		in    bool
		qty   string
		price string
	}{
		{true, "10", "5"}, {false, "4", ""}, {false, "7", ""},
		{true, "2", "8"}, {false, "8", ""}, {false, "1", ""},
	}
	for _, op := range ops {
		if op.in {
			_, err := ledger.ApplyInbound("itemX", "whA", dec(op.qty), dec(op.price))
			require.NoError(t, err)
		} else {
			_, _ = ledger.ApplyOutbound("itemX", "whA", dec(op.qty))
		}
		bal, err := repo.Get("itemX", "whA")
		require.NoError(t, err)
		assert.False(t, bal.Quantity.IsNegative(), "cantidad negativa tras %+v", op)
	}
}
