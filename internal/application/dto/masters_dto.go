package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Unit       string          `json:"unit"`
	VATRate    decimal.Decimal `json:"vat_rate"`
	MinStock   decimal.Decimal `json:"min_stock"`
	CostMethod string          `json:"cost_method,omitempty"`
	Barcode    string          `json:"barcode,omitempty"`
}

// ItemResponse representación de un artículo.
type ItemResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Unit       string          `json:"unit"`
	VATRate    decimal.Decimal `json:"vat_rate"`
	MinStock   decimal.Decimal `json:"min_stock"`
	CostMethod string          `json:"cost_method"`
	Barcode    string          `json:"barcode,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// WarehouseResponse representación de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePartyRequest body para POST /api/parties.
type CreatePartyRequest struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	PaymentTermDays int             `json:"payment_term_days"`
	RiskLimit       decimal.Decimal `json:"risk_limit"`
}

// PartyResponse representación de un tercero.
type PartyResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	PaymentTermDays int             `json:"payment_term_days"`
	RiskLimit       decimal.Decimal `json:"risk_limit"`
	CreatedAt       time.Time       `json:"created_at"`
}
