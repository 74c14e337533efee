package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. IN/OUT/TRANSFER son los tipos aceptados como
// entrada; un TRANSFER se registra como dos filas TRANSFER-OUT / TRANSFER-IN
// que comparten referencia y TransactionID.
const (
	MoveTypeIN          = "IN"
	MoveTypeOUT         = "OUT"
	MoveTypeTRANSFER    = "TRANSFER"
	MoveTypeTransferOut = "TRANSFER-OUT"
	MoveTypeTransferIn  = "TRANSFER-IN"
)

// StockMovement es un registro inmutable del log de movimientos (append-only).
// La historia nunca se edita ni se borra; las correcciones se hacen con
// movimientos compensatorios nuevos.
type StockMovement struct {
	ID              string
	TransactionID   string // agrupa las dos patas de un TRANSFER
	ItemID          string
	FromWarehouseID *string // nulo salvo OUT / TRANSFER-OUT
	ToWarehouseID   *string // nulo salvo IN / TRANSFER-IN
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal // valoración de la entrada; informativo en salidas
	Type            string
	Reference       string
	At              time.Time
}
