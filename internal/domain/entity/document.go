package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de venta (cotización → pedido → remisión → factura).
const (
	DocTypeQuote    = "QUOTE"
	DocTypeOrder    = "ORDER"
	DocTypeDispatch = "DISPATCH"
	DocTypeInvoice  = "INVOICE"
)

// Estados de documento.
const (
	DocStatusOpen   = "OPEN"
	DocStatusClosed = "CLOSED"
)

// Document es la cabecera de un documento de venta con sus totales calculados.
type Document struct {
	ID         string
	DocType    string
	Number     string // único, formato {Q|S|IR|F}{yy}-{seq:06d}
	Date       time.Time
	PartyID    string
	Currency   string
	Notes      string
	Subtotal   decimal.Decimal
	VATTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	Status     string
	CreatedAt  time.Time
}

// DocumentLine es una línea de documento. LineTotal se almacena con IVA incluido.
type DocumentLine struct {
	ID         string
	DocumentID string
	ItemID     string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	VATRate    decimal.Decimal
	LineTotal  decimal.Decimal
}
