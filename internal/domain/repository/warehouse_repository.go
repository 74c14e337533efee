package repository

import "github.com/invorya/erp-mes-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para bodegas (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByCode(code string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
}
