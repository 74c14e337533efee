package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLineRequest línea de documento en la petición.
type DocumentLineRequest struct {
	ItemCode  string          `json:"item_code"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	VATRate   decimal.Decimal `json:"vat_rate"`
}

// CreateDocumentRequest body para POST /api/docs.
type CreateDocumentRequest struct {
	DocType   string                `json:"doc_type"`
	PartyCode string                `json:"party_code"`
	Currency  string                `json:"currency,omitempty"`
	Notes     string                `json:"notes,omitempty"`
	Lines     []DocumentLineRequest `json:"lines"`
}

// DocumentResponse cabecera de documento con totales.
type DocumentResponse struct {
	ID         string          `json:"id"`
	DocType    string          `json:"doc_type"`
	Number     string          `json:"number"`
	Date       time.Time       `json:"date"`
	PartyID    string          `json:"party_id"`
	Currency   string          `json:"currency"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	VATTotal   decimal.Decimal `json:"vat_total"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Status     string          `json:"status"`
}
