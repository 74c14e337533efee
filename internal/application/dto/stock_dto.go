package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMoveRequest body para POST /api/stock/move. Los códigos se resuelven a
// identificadores antes de invocar el motor.
type StockMoveRequest struct {
	ItemCode          string          `json:"item_code"`
	FromWarehouseCode string          `json:"from_warehouse_code,omitempty"`
	ToWarehouseCode   string          `json:"to_warehouse_code,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Type              string          `json:"type"`
	Reference         string          `json:"reference,omitempty"`
}

// StockSnapshotRow fila del snapshot de stock.
type StockSnapshotRow struct {
	ItemCode      string          `json:"item_code"`
	WarehouseCode string          `json:"warehouse_code"`
	Quantity      decimal.Decimal `json:"quantity"`
	AvgCost       decimal.Decimal `json:"avg_cost"`
}

// StockMovementResponse fila del log de movimientos.
type StockMovementResponse struct {
	ID              string          `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	ItemID          string          `json:"item_id"`
	FromWarehouseID *string         `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *string         `json:"to_warehouse_id,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Type            string          `json:"type"`
	Reference       string          `json:"reference,omitempty"`
	At              time.Time       `json:"at"`
}
