package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cuenta y direcciones de transacción de caja/banco.
const (
	AccountTypeCash = "CASH"
	AccountTypeBank = "BANK"

	TxDirectionIn  = "IN"
	TxDirectionOut = "OUT"
)

// Estados de cheque. PORTFOLIO es el estado inicial (cheque en cartera).
const (
	ChequeStatusPortfolio = "PORTFOY"
	ChequeStatusCashed    = "CASHED"
	ChequeStatusBounced   = "BOUNCED"
)

// CashAccount cuenta de caja (nombre único).
type CashAccount struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// BankAccount cuenta bancaria (nombre único).
type BankAccount struct {
	ID        string
	Name      string
	IBAN      string
	CreatedAt time.Time
}

// CashBankTx transacción de caja o banco. AccountID apunta a CashAccount o
// BankAccount según AccountType.
type CashBankTx struct {
	ID          string
	Date        time.Time
	AccountType string
	AccountID   string
	Direction   string
	PartyID     *string
	Amount      decimal.Decimal
	Currency    string
	Reference   string
	Notes       string
	CreatedAt   time.Time
}

// Cheque documento de cheque recibido o emitido.
type Cheque struct {
	ID        string
	Number    string // único
	PartyID   *string
	Amount    decimal.Decimal
	Currency  string
	DueDate   time.Time
	Status    string
	Notes     string
	CreatedAt time.Time
}
