package repository

import "github.com/invorya/erp-mes-api/internal/domain/entity"

// PartyRepository define el puerto de persistencia para terceros (DIP).
type PartyRepository interface {
	Create(party *entity.Party) error
	GetByID(id string) (*entity.Party, error)
	GetByCode(code string) (*entity.Party, error)
	List(limit, offset int) ([]*entity.Party, error)
}
