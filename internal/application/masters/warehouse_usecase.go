package masters

import (
	"time"

	"github.com/google/uuid"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso del maestro de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega; el código es único (ErrDuplicate si ya existe).
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetByCode(in.Code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	wh := &entity.Warehouse{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(wh); err != nil {
		return nil, err
	}
	return toWarehouseResponse(wh), nil
}

// GetByCode resuelve una bodega por código legible.
func (uc *WarehouseUseCase) GetByCode(code string) (*dto.WarehouseResponse, error) {
	wh, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(wh), nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(limit, offset int) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, *toWarehouseResponse(w))
	}
	return out, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
	}
}
