package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden de producción. OPEN se acepta como sinónimo histórico de
// IN_PROGRESS; el cierre es una acción administrativa separada, nunca
// automática al alcanzar la cantidad objetivo.
const (
	WorkOrderStatusInProgress = "IN_PROGRESS"
	WorkOrderStatusOpen       = "OPEN"
	WorkOrderStatusClosed     = "CLOSED"
)

// WorkOrder es una orden de producción: convierte consumo de materiales en
// producto terminado con costeo promedio.
type WorkOrder struct {
	ID          string
	Number      string // único, formato WO{yy}-{seq:06d}
	ProductID   string
	TargetQty   decimal.Decimal
	ProducedQty decimal.Decimal
	Status      string
	StartDate   time.Time
	EndDate     *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen indica si la orden admite consumos y producción.
func (w *WorkOrder) IsOpen() bool {
	return w.Status == WorkOrderStatusInProgress || w.Status == WorkOrderStatusOpen
}

// WorkOrderConsumption registra material sacado de stock y cargado a la orden.
// Inmutable una vez creado.
type WorkOrderConsumption struct {
	ID          string
	WorkOrderID string
	ItemID      string
	Quantity    decimal.Decimal
	WarehouseID string
	Reference   string
	CreatedAt   time.Time
}

// WorkOrderFinishedGood registra producto terminado ingresado a stock con el
// costo unitario calculado al momento de producir. Ese costo queda congelado:
// no se recalcula aunque los promedios del libro cambien después.
type WorkOrderFinishedGood struct {
	ID          string
	WorkOrderID string
	ProductID   string
	Quantity    decimal.Decimal
	WarehouseID string
	UnitCost    decimal.Decimal
	CreatedAt   time.Time
}
