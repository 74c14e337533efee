package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de tercero.
const (
	PartyTypeCustomer = "CUSTOMER"
	PartyTypeSupplier = "SUPPLIER"
)

// Party representa un tercero comercial (cliente o proveedor).
type Party struct {
	ID              string
	Code            string // código único legible
	Name            string
	Type            string
	PaymentTermDays int             // días de plazo de pago
	RiskLimit       decimal.Decimal // límite de riesgo de crédito
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
