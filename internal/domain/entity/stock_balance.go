package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance es la entidad del libro de costos: una fila por (artículo, bodega)
// con cantidad disponible y costo promedio ponderado. Se crea de forma perezosa
// con el primer movimiento de entrada y nunca se elimina (puede quedar en cero).
//
// Invariantes: Quantity >= 0 siempre; AvgCost solo cambia en entradas (nunca en
// salidas) y es el promedio ponderado de todos los costos de entrada históricos.
type StockBalance struct {
	ItemID      string
	WarehouseID string
	Quantity    decimal.Decimal
	AvgCost     decimal.Decimal
	UpdatedAt   time.Time
}

// StockSnapshotRow es la vista de lectura del snapshot: la fila de balance con
// los códigos legibles de artículo y bodega resueltos.
type StockSnapshotRow struct {
	ItemCode      string
	WarehouseCode string
	Quantity      decimal.Decimal
	AvgCost       decimal.Decimal
}
