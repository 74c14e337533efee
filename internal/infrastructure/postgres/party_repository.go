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

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación del puerto PartyRepository sobre PostgreSQL (usable con pool o tx).
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador de persistencia para terceros. Pasar pool o tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

const partyColumns = `id, code, name, party_type, payment_term_days, risk_limit, created_at, updated_at`

// Create persiste un nuevo tercero. El código es único.
func (r *PartyRepo) Create(party *entity.Party) error {
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.Code, party.Name, party.Type,
		party.PaymentTermDays, party.RiskLimit, party.CreatedAt, party.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID.
func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	return r.getBy(`id = $1`, id)
}

// GetByCode obtiene un tercero por código.
func (r *PartyRepo) GetByCode(code string) (*entity.Party, error) {
	return r.getBy(`code = $1`, code)
}

func (r *PartyRepo) getBy(where, arg string) (*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE ` + where
	var p entity.Party
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Code, &p.Name, &p.Type, &p.PaymentTermDays, &p.RiskLimit, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return &p, nil
}

// List lista terceros con paginación, por código.
func (r *PartyRepo) List(limit, offset int) ([]*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		var p entity.Party
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Type, &p.PaymentTermDays,
			&p.RiskLimit, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
