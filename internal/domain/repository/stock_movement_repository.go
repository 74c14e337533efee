package repository

import "github.com/invorya/erp-mes-api/internal/domain/entity"

// StockMovementRepository define el puerto del log de movimientos (append-only).
// No hay Update ni Delete: la historia es inmutable.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
}
