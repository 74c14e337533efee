package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/costing"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// Ledger es el libro de costos: el único componente que muta balances por
// (artículo, bodega). Opera sobre un repositorio atado a la transacción del
// caller; cada mutación bloquea la fila (SELECT FOR UPDATE) y la persiste
// antes de retornar, así un lector concurrente nunca ve una mutación a medias.
type Ledger struct {
	balances repository.StockBalanceRepository
}

// NewLedger construye el libro sobre un repositorio de balances (pool o tx).
func NewLedger(balances repository.StockBalanceRepository) *Ledger {
	return &Ledger{balances: balances}
}

// ApplyInbound aplica una entrada: recalcula el costo promedio ponderado y suma
// la cantidad. Es el único lugar donde AvgCost cambia. La fila se crea perezosa
// en cero si no existe.
func (l *Ledger) ApplyInbound(itemID, warehouseID string, qty, unitPrice decimal.Decimal) (*entity.StockBalance, error) {
	if !qty.GreaterThan(decimal.Zero) || unitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	bal, err := l.balances.GetForUpdate(itemID, warehouseID)
	if err != nil {
		return nil, err
	}
	bal.AvgCost = costing.WeightedAverage(bal.Quantity, bal.AvgCost, qty, unitPrice)
	bal.Quantity = bal.Quantity.Add(qty)
	bal.UpdatedAt = time.Now()
	if err := l.balances.Upsert(bal); err != nil {
		return nil, err
	}
	return bal, nil
}

// ApplyOutbound aplica una salida: descuenta cantidad sin tocar el costo
// promedio. El stock negativo está prohibido: si el balance no alcanza, la
// operación se rechaza con ErrInsufficientStock y la fila queda intacta.
func (l *Ledger) ApplyOutbound(itemID, warehouseID string, qty decimal.Decimal) (*entity.StockBalance, error) {
	if !qty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	bal, err := l.balances.GetForUpdate(itemID, warehouseID)
	if err != nil {
		return nil, err
	}
	if bal.Quantity.LessThan(qty) {
		return nil, domain.ErrInsufficientStock
	}
	bal.Quantity = bal.Quantity.Sub(qty)
	bal.UpdatedAt = time.Now()
	if err := l.balances.Upsert(bal); err != nil {
		return nil, err
	}
	return bal, nil
}
