package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/erp-mes-api/internal/application/production"
	"github.com/invorya/erp-mes-api/internal/application/sales"
	"github.com/invorya/erp-mes-api/internal/application/stock"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// Ensure TxRunner implements the application transaction ports.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	balanceRepo repository.StockBalanceRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balanceRepo := NewStockBalanceRepository(tx)
	movementRepo := NewStockMovementRepository(tx)

	if err := fn(balanceRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProduction inicia una transacción con repos de balances y órdenes de
// producción (para Consume y Produce).
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	balanceRepo repository.StockBalanceRepository,
	woRepo repository.WorkOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balanceRepo := NewStockBalanceRepository(tx)
	woRepo := NewWorkOrderRepository(tx)

	if err := fn(balanceRepo, woRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDocument inicia una transacción con el repo de documentos, para que
// cabecera y líneas se persistan como una sola unidad.
func (r *TxRunner) RunDocument(ctx context.Context, fn func(docRepo repository.DocumentRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDocumentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
