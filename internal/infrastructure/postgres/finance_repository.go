package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo implementación del puerto FinanceRepository sobre PostgreSQL (usable con pool o tx).
type FinanceRepo struct {
	q Querier
}

// NewFinanceRepository construye el adaptador de caja/banco y cheques. Pasar pool o tx (Querier).
func NewFinanceRepository(q Querier) *FinanceRepo {
	return &FinanceRepo{q: q}
}

// CreateCashAccount persiste una cuenta de caja. El nombre es único.
func (r *FinanceRepo) CreateCashAccount(acc *entity.CashAccount) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO cash_accounts (id, name, created_at) VALUES ($1, $2, $3)`,
		acc.ID, acc.Name, acc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cash account: %w", err)
	}
	return nil
}

// GetCashAccountByName obtiene una cuenta de caja por nombre, o nil.
func (r *FinanceRepo) GetCashAccountByName(name string) (*entity.CashAccount, error) {
	var acc entity.CashAccount
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM cash_accounts WHERE name = $1`, name,
	).Scan(&acc.ID, &acc.Name, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash account: %w", err)
	}
	return &acc, nil
}

// CreateBankAccount persiste una cuenta bancaria. El nombre es único.
func (r *FinanceRepo) CreateBankAccount(acc *entity.BankAccount) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO bank_accounts (id, name, iban, created_at) VALUES ($1, $2, $3, $4)`,
		acc.ID, acc.Name, acc.IBAN, acc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetBankAccountByName obtiene una cuenta bancaria por nombre, o nil.
func (r *FinanceRepo) GetBankAccountByName(name string) (*entity.BankAccount, error) {
	var acc entity.BankAccount
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, iban, created_at FROM bank_accounts WHERE name = $1`, name,
	).Scan(&acc.ID, &acc.Name, &acc.IBAN, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return &acc, nil
}

const cashBankTxColumns = `id, tx_date, account_type, account_id, direction, party_id, amount, currency, reference, notes, created_at`

// CreateTransaction agrega una transacción de caja o banco al registro.
func (r *FinanceRepo) CreateTransaction(tx *entity.CashBankTx) error {
	query := `
		INSERT INTO cash_bank_transactions (` + cashBankTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Date, tx.AccountType, tx.AccountID, tx.Direction,
		tx.PartyID, tx.Amount, tx.Currency, tx.Reference, tx.Notes, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash/bank transaction: %w", err)
	}
	return nil
}

// ListTransactions lista transacciones con paginación, las más recientes primero.
func (r *FinanceRepo) ListTransactions(limit, offset int) ([]*entity.CashBankTx, error) {
	query := `
		SELECT ` + cashBankTxColumns + `
		FROM cash_bank_transactions ORDER BY tx_date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashBankTx
	for rows.Next() {
		var tx entity.CashBankTx
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.AccountType, &tx.AccountID, &tx.Direction,
			&tx.PartyID, &tx.Amount, &tx.Currency, &tx.Reference, &tx.Notes, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}

const chequeColumns = `id, number, party_id, amount, currency, due_date, status, notes, created_at`

// CreateCheque persiste un cheque. El número es único.
func (r *FinanceRepo) CreateCheque(ch *entity.Cheque) error {
	query := `
		INSERT INTO cheques (` + chequeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ch.ID, ch.Number, ch.PartyID, ch.Amount, ch.Currency,
		ch.DueDate, ch.Status, ch.Notes, ch.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cheque: %w", err)
	}
	return nil
}

// GetChequeByNumber obtiene un cheque por número, o nil.
func (r *FinanceRepo) GetChequeByNumber(number string) (*entity.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques WHERE number = $1`
	var ch entity.Cheque
	err := r.q.QueryRow(context.Background(), query, number).Scan(
		&ch.ID, &ch.Number, &ch.PartyID, &ch.Amount, &ch.Currency,
		&ch.DueDate, &ch.Status, &ch.Notes, &ch.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cheque: %w", err)
	}
	return &ch, nil
}

// ListCheques lista cheques con paginación, por vencimiento.
func (r *FinanceRepo) ListCheques(limit, offset int) ([]*entity.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques ORDER BY due_date, number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cheques: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cheque
	for rows.Next() {
		var ch entity.Cheque
		if err := rows.Scan(&ch.ID, &ch.Number, &ch.PartyID, &ch.Amount, &ch.Currency,
			&ch.DueDate, &ch.Status, &ch.Notes, &ch.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cheque: %w", err)
		}
		list = append(list, &ch)
	}
	return list, rows.Err()
}
