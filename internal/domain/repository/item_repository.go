package repository

import "github.com/invorya/erp-mes-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para artículos (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
}
