package repository

import (
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain/entity"
)

// WorkOrderRepository define el puerto de persistencia para órdenes de
// producción y sus registros de consumo y producto terminado (append-only).
type WorkOrderRepository interface {
	Create(wo *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	// GetForUpdate bloquea la fila de la orden (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.WorkOrder, error)
	UpdateProducedQty(id string, producedQty decimal.Decimal) error
	List(limit, offset int) ([]*entity.WorkOrder, error)
	// NextSequence devuelve el consecutivo para numerar órdenes.
	NextSequence() (int64, error)

	AddConsumption(c *entity.WorkOrderConsumption) error
	ListConsumptions(workOrderID string) ([]*entity.WorkOrderConsumption, error)
	AddFinishedGood(fg *entity.WorkOrderFinishedGood) error
	ListFinishedGoods(workOrderID string) ([]*entity.WorkOrderFinishedGood, error)
}
