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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, code, name, category, unit, vat_rate, min_stock, cost_method, barcode, created_at, updated_at`

// Create persiste un nuevo artículo. El código es único.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Category, item.Unit,
		item.VATRate, item.MinStock, item.CostMethod, item.Barcode,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getBy(`id = $1`, id)
}

// GetByCode obtiene un artículo por código.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	return r.getBy(`code = $1`, code)
}

func (r *ItemRepo) getBy(where, arg string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + where
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&i.ID, &i.Code, &i.Name, &i.Category, &i.Unit, &i.VATRate,
		&i.MinStock, &i.CostMethod, &i.Barcode, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// List lista artículos con paginación, por código.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Code, &i.Name, &i.Category, &i.Unit, &i.VATRate,
			&i.MinStock, &i.CostMethod, &i.Barcode, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
