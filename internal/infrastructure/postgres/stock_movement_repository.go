package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del log de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el log es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega un movimiento al log.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, transaction_id, item_id, from_warehouse_id, to_warehouse_id, quantity, unit_price, move_type, reference, moved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.TransactionID, movement.ItemID,
		movement.FromWarehouseID, movement.ToWarehouseID,
		movement.Quantity, movement.UnitPrice, movement.Type, movement.Reference, movement.At,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

const movementColumns = `id, transaction_id, item_id, from_warehouse_id, to_warehouse_id, quantity, unit_price, move_type, reference, moved_at`

// ListByItem lista los movimientos de un artículo, los más recientes primero.
func (r *StockMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE item_id = $1
		ORDER BY moved_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	return scanMovements(rows)
}

// List lista los movimientos de todos los artículos, los más recientes primero.
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		ORDER BY moved_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ItemID, &m.FromWarehouseID, &m.ToWarehouseID,
			&m.Quantity, &m.UnitPrice, &m.Type, &m.Reference, &m.At); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
