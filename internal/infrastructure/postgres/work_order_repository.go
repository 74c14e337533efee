package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación del puerto WorkOrderRepository sobre PostgreSQL
// (usable con pool o tx). Consumos y producto terminado son append-only.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador de órdenes de producción. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, number, product_id, target_qty, produced_qty, status, start_date, end_date, notes, created_at, updated_at`

// Create persiste una nueva orden. El número es único.
func (r *WorkOrderRepo) Create(wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		wo.ID, wo.Number, wo.ProductID, wo.TargetQty, wo.ProducedQty,
		wo.Status, wo.StartDate, wo.EndDate, wo.Notes, wo.CreatedAt, wo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	return r.get(id, "")
}

// GetForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE): consumo
// y producción concurrentes sobre la misma orden se serializan aquí.
func (r *WorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	return r.get(id, " FOR UPDATE")
}

func (r *WorkOrderRepo) get(id, lock string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1` + lock
	var wo entity.WorkOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&wo.ID, &wo.Number, &wo.ProductID, &wo.TargetQty, &wo.ProducedQty,
		&wo.Status, &wo.StartDate, &wo.EndDate, &wo.Notes, &wo.CreatedAt, &wo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &wo, nil
}

// UpdateProducedQty actualiza la cantidad producida acumulada.
func (r *WorkOrderRepo) UpdateProducedQty(id string, producedQty decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE work_orders SET produced_qty = $2, updated_at = now() WHERE id = $1`,
		id, producedQty,
	)
	if err != nil {
		return fmt.Errorf("update produced qty: %w", err)
	}
	return nil
}

// List lista órdenes con paginación, las más recientes primero.
func (r *WorkOrderRepo) List(limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		var wo entity.WorkOrder
		if err := rows.Scan(&wo.ID, &wo.Number, &wo.ProductID, &wo.TargetQty, &wo.ProducedQty,
			&wo.Status, &wo.StartDate, &wo.EndDate, &wo.Notes, &wo.CreatedAt, &wo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &wo)
	}
	return list, rows.Err()
}

// NextSequence devuelve el consecutivo para numerar órdenes.
func (r *WorkOrderRepo) NextSequence() (int64, error) {
	var seq int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('work_order_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next work order sequence: %w", err)
	}
	return seq, nil
}

// AddConsumption agrega un registro de consumo de material a la orden.
func (r *WorkOrderRepo) AddConsumption(c *entity.WorkOrderConsumption) error {
	query := `
		INSERT INTO work_order_consumptions (id, work_order_id, item_id, quantity, warehouse_id, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.WorkOrderID, c.ItemID, c.Quantity, c.WarehouseID, c.Reference, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consumption: %w", err)
	}
	return nil
}

// ListConsumptions lista los consumos de una orden en orden de registro.
func (r *WorkOrderRepo) ListConsumptions(workOrderID string) ([]*entity.WorkOrderConsumption, error) {
	query := `
		SELECT id, work_order_id, item_id, quantity, warehouse_id, reference, created_at
		FROM work_order_consumptions WHERE work_order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrderConsumption
	for rows.Next() {
		var c entity.WorkOrderConsumption
		if err := rows.Scan(&c.ID, &c.WorkOrderID, &c.ItemID, &c.Quantity,
			&c.WarehouseID, &c.Reference, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// AddFinishedGood agrega un registro de producto terminado con su costo congelado.
func (r *WorkOrderRepo) AddFinishedGood(fg *entity.WorkOrderFinishedGood) error {
	query := `
		INSERT INTO work_order_finished_goods (id, work_order_id, product_id, quantity, warehouse_id, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		fg.ID, fg.WorkOrderID, fg.ProductID, fg.Quantity, fg.WarehouseID, fg.UnitCost, fg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert finished good: %w", err)
	}
	return nil
}

// ListFinishedGoods lista el producto terminado de una orden en orden de registro.
func (r *WorkOrderRepo) ListFinishedGoods(workOrderID string) ([]*entity.WorkOrderFinishedGood, error) {
	query := `
		SELECT id, work_order_id, product_id, quantity, warehouse_id, unit_cost, created_at
		FROM work_order_finished_goods WHERE work_order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("list finished goods: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrderFinishedGood
	for rows.Next() {
		var fg entity.WorkOrderFinishedGood
		if err := rows.Scan(&fg.ID, &fg.WorkOrderID, &fg.ProductID, &fg.Quantity,
			&fg.WarehouseID, &fg.UnitCost, &fg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan finished good: %w", err)
		}
		list = append(list, &fg)
	}
	return list, rows.Err()
}
