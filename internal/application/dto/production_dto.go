package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest body para POST /api/production/wo.
type CreateWorkOrderRequest struct {
	ProductCode string          `json:"product_code"`
	TargetQty   decimal.Decimal `json:"target_qty"`
	Notes       string          `json:"notes,omitempty"`
}

// WorkOrderResponse representación de una orden de producción.
type WorkOrderResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	ProductID   string          `json:"product_id"`
	TargetQty   decimal.Decimal `json:"target_qty"`
	ProducedQty decimal.Decimal `json:"produced_qty"`
	Status      string          `json:"status"`
	StartDate   time.Time       `json:"start_date"`
	Notes       string          `json:"notes,omitempty"`
}

// ConsumeRequest body para POST /api/production/consume.
type ConsumeRequest struct {
	WorkOrderID   string          `json:"wo_id"`
	ItemCode      string          `json:"item_code"`
	Quantity      decimal.Decimal `json:"quantity"`
	WarehouseCode string          `json:"warehouse_code"`
	Reference     string          `json:"reference,omitempty"`
}

// ProduceRequest body para POST /api/production/produce.
type ProduceRequest struct {
	WorkOrderID   string          `json:"wo_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	WarehouseCode string          `json:"warehouse_code"`
	OverheadRate  decimal.Decimal `json:"overhead_rate"`
}

// ProduceResponse respuesta de producción con el costo unitario calculado
// (redondeado a 3 decimales para presentación).
type ProduceResponse struct {
	UnitCost decimal.Decimal `json:"unit_cost"`
}
