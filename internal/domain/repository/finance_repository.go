package repository

import "github.com/invorya/erp-mes-api/internal/domain/entity"

// FinanceRepository define el puerto de persistencia para cuentas de
// caja/banco, sus transacciones y cheques.
type FinanceRepository interface {
	CreateCashAccount(acc *entity.CashAccount) error
	GetCashAccountByName(name string) (*entity.CashAccount, error)
	CreateBankAccount(acc *entity.BankAccount) error
	GetBankAccountByName(name string) (*entity.BankAccount, error)

	CreateTransaction(tx *entity.CashBankTx) error
	ListTransactions(limit, offset int) ([]*entity.CashBankTx, error)

	CreateCheque(ch *entity.Cheque) error
	GetChequeByNumber(number string) (*entity.Cheque, error)
	ListCheques(limit, offset int) ([]*entity.Cheque, error)
}
