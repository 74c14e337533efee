package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

var _ repository.StockBalanceRepository = (*StockBalanceRepo)(nil)

// StockBalanceRepo implementación del libro de costos sobre PostgreSQL
// (usable con pool o tx). Una fila por artículo+bodega.
type StockBalanceRepo struct {
	q Querier
}

// NewStockBalanceRepository construye el adaptador de balances. Pasar pool o tx (Querier).
func NewStockBalanceRepository(q Querier) *StockBalanceRepo {
	return &StockBalanceRepo{q: q}
}

// Get obtiene el balance de un artículo en una bodega. Si la fila no existe,
// devuelve una en cero: la primera entrada la crea vía Upsert.
func (r *StockBalanceRepo) Get(itemID, warehouseID string) (*entity.StockBalance, error) {
	query := `
		SELECT item_id, warehouse_id, quantity, avg_cost, updated_at
		FROM stock_balances WHERE item_id = $1 AND warehouse_id = $2`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, itemID, warehouseID).Scan(
		&b.ItemID, &b.WarehouseID, &b.Quantity, &b.AvgCost, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroBalance(itemID, warehouseID), nil
		}
		return nil, fmt.Errorf("get stock balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate obtiene el balance y bloquea la fila para update (SELECT FOR UPDATE).
// Dos movimientos concurrentes sobre la misma clave se serializan aquí. FOR UPDATE
// sobre una fila inexistente no bloquea nada, así que la primera operación sobre
// una clave nueva materializa la fila en cero antes de tomar el candado.
func (r *StockBalanceRepo) GetForUpdate(itemID, warehouseID string) (*entity.StockBalance, error) {
	insert := `
		INSERT INTO stock_balances (item_id, warehouse_id, quantity, avg_cost, updated_at)
		VALUES ($1, $2, 0, 0, now())
		ON CONFLICT (item_id, warehouse_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, itemID, warehouseID); err != nil {
		return nil, fmt.Errorf("materialize stock balance: %w", err)
	}
	query := `
		SELECT item_id, warehouse_id, quantity, avg_cost, updated_at
		FROM stock_balances WHERE item_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, itemID, warehouseID).Scan(
		&b.ItemID, &b.WarehouseID, &b.Quantity, &b.AvgCost, &b.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock balance for update: %w", err)
	}
	return &b, nil
}

// Upsert inserta o actualiza cantidad y costo promedio (por artículo y bodega).
func (r *StockBalanceRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (item_id, warehouse_id, quantity, avg_cost, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, avg_cost = EXCLUDED.avg_cost, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		balance.ItemID, balance.WarehouseID, balance.Quantity, balance.AvgCost,
	)
	if err != nil {
		return fmt.Errorf("upsert stock balance: %w", err)
	}
	return nil
}

// GetAnyByItem devuelve la primera fila de balance del artículo en cualquier
// bodega (orden estable por warehouse_id), o nil si no hay ninguna.
func (r *StockBalanceRepo) GetAnyByItem(itemID string) (*entity.StockBalance, error) {
	query := `
		SELECT item_id, warehouse_id, quantity, avg_cost, updated_at
		FROM stock_balances WHERE item_id = $1
		ORDER BY warehouse_id LIMIT 1`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&b.ItemID, &b.WarehouseID, &b.Quantity, &b.AvgCost, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock balance by item: %w", err)
	}
	return &b, nil
}

// Snapshot lista todos los balances con los códigos legibles resueltos.
func (r *StockBalanceRepo) Snapshot() ([]entity.StockSnapshotRow, error) {
	query := `
		SELECT i.code, w.code, b.quantity, b.avg_cost
		FROM stock_balances b
		JOIN items i ON i.id = b.item_id
		JOIN warehouses w ON w.id = b.warehouse_id
		ORDER BY i.code, w.code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("snapshot stock: %w", err)
	}
	defer rows.Close()
	var list []entity.StockSnapshotRow
	for rows.Next() {
		var row entity.StockSnapshotRow
		if err := rows.Scan(&row.ItemCode, &row.WarehouseCode, &row.Quantity, &row.AvgCost); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func zeroBalance(itemID, warehouseID string) *entity.StockBalance {
	return &entity.StockBalance{
		ItemID:      itemID,
		WarehouseID: warehouseID,
		Quantity:    decimal.Zero,
		AvgCost:     decimal.Zero,
	}
}
