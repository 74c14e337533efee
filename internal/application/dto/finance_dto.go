package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest body para POST /api/finance/accounts.
type CreateAccountRequest struct {
	AccountType string `json:"account_type"` // CASH | BANK
	Name        string `json:"name"`
	IBAN        string `json:"iban,omitempty"`
}

// CreateTxRequest body para POST /api/finance/tx.
type CreateTxRequest struct {
	AccountType string          `json:"account_type"`
	AccountName string          `json:"account_name"`
	Direction   string          `json:"direction"` // IN | OUT
	PartyCode   string          `json:"party_code,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// CreateChequeRequest body para POST /api/finance/cheques.
type CreateChequeRequest struct {
	Number    string          `json:"number"`
	PartyCode string          `json:"party_code,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency,omitempty"`
	DueDate   time.Time       `json:"due_date"`
	Status    string          `json:"status,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// IDResponse respuesta mínima con el identificador creado.
type IDResponse struct {
	ID string `json:"id"`
}
