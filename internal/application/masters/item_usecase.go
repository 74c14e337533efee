package masters

import (
	"time"

	"github.com/google/uuid"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// ItemUseCase casos de uso del maestro de artículos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo; el código es único (ErrDuplicate si ya existe).
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetByCode(in.Code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	costMethod := in.CostMethod
	if costMethod == "" {
		costMethod = entity.CostMethodAverage
	}
	category := in.Category
	if category == "" {
		category = entity.ItemCategoryOther
	}
	now := time.Now()
	item := &entity.Item{
		ID:         uuid.New().String(),
		Code:       in.Code,
		Name:       in.Name,
		Category:   category,
		Unit:       in.Unit,
		VATRate:    in.VATRate,
		MinStock:   in.MinStock,
		CostMethod: costMethod,
		Barcode:    in.Barcode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByCode resuelve un artículo por código legible.
func (uc *ItemUseCase) GetByCode(code string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista artículos con paginación.
func (uc *ItemUseCase) List(limit, offset int) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:         it.ID,
		Code:       it.Code,
		Name:       it.Name,
		Category:   it.Category,
		Unit:       it.Unit,
		VATRate:    it.VATRate,
		MinStock:   it.MinStock,
		CostMethod: it.CostMethod,
		Barcode:    it.Barcode,
		CreatedAt:  it.CreatedAt,
	}
}
