package masters

import (
	"time"

	"github.com/google/uuid"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// PartyUseCase casos de uso del maestro de terceros.
type PartyUseCase struct {
	repo repository.PartyRepository
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(repo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo}
}

// Create crea un tercero; el código es único (ErrDuplicate si ya existe).
func (uc *PartyUseCase) Create(in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetByCode(in.Code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	party := &entity.Party{
		ID:              uuid.New().String(),
		Code:            in.Code,
		Name:            in.Name,
		Type:            in.Type,
		PaymentTermDays: in.PaymentTermDays,
		RiskLimit:       in.RiskLimit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetByCode resuelve un tercero por código legible.
func (uc *PartyUseCase) GetByCode(code string) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	return toPartyResponse(party), nil
}

// List lista terceros con paginación.
func (uc *PartyUseCase) List(limit, offset int) ([]dto.PartyResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPartyResponse(p))
	}
	return out, nil
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:              p.ID,
		Code:            p.Code,
		Name:            p.Name,
		Type:            p.Type,
		PaymentTermDays: p.PaymentTermDays,
		RiskLimit:       p.RiskLimit,
		CreatedAt:       p.CreatedAt,
	}
}
