package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// UseCase casos de uso de caja/banco y cheques.
type UseCase struct {
	repo      repository.FinanceRepository
	partyRepo repository.PartyRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.FinanceRepository, partyRepo repository.PartyRepository) *UseCase {
	return &UseCase{repo: repo, partyRepo: partyRepo}
}

// CreateAccount crea una cuenta de caja o banco (nombre único por tipo).
func (uc *UseCase) CreateAccount(in dto.CreateAccountRequest) (string, error) {
	if in.Name == "" {
		return "", domain.ErrInvalidInput
	}
	switch in.AccountType {
	case entity.AccountTypeCash:
		if existing, err := uc.repo.GetCashAccountByName(in.Name); err != nil {
			return "", err
		} else if existing != nil {
			return "", domain.ErrDuplicate
		}
		acc := &entity.CashAccount{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
		if err := uc.repo.CreateCashAccount(acc); err != nil {
			return "", err
		}
		return acc.ID, nil
	case entity.AccountTypeBank:
		if existing, err := uc.repo.GetBankAccountByName(in.Name); err != nil {
			return "", err
		} else if existing != nil {
			return "", domain.ErrDuplicate
		}
		acc := &entity.BankAccount{ID: uuid.New().String(), Name: in.Name, IBAN: in.IBAN, CreatedAt: time.Now()}
		if err := uc.repo.CreateBankAccount(acc); err != nil {
			return "", err
		}
		return acc.ID, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// CreateTransaction registra una transacción de caja o banco contra una cuenta
// existente (resuelta por nombre).
func (uc *UseCase) CreateTransaction(in dto.CreateTxRequest) (string, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}
	if in.Direction != entity.TxDirectionIn && in.Direction != entity.TxDirectionOut {
		return "", domain.ErrInvalidInput
	}

	var accountID string
	switch in.AccountType {
	case entity.AccountTypeCash:
		acc, err := uc.repo.GetCashAccountByName(in.AccountName)
		if err != nil {
			return "", err
		}
		if acc == nil {
			return "", domain.ErrNotFound
		}
		accountID = acc.ID
	case entity.AccountTypeBank:
		acc, err := uc.repo.GetBankAccountByName(in.AccountName)
		if err != nil {
			return "", err
		}
		if acc == nil {
			return "", domain.ErrNotFound
		}
		accountID = acc.ID
	default:
		return "", domain.ErrInvalidInput
	}

	partyID, err := uc.resolveParty(in.PartyCode)
	if err != nil {
		return "", err
	}
	currency := in.Currency
	if currency == "" {
		currency = "TRY"
	}
	tx := &entity.CashBankTx{
		ID:          uuid.New().String(),
		Date:        time.Now(),
		AccountType: in.AccountType,
		AccountID:   accountID,
		Direction:   in.Direction,
		PartyID:     partyID,
		Amount:      in.Amount,
		Currency:    currency,
		Reference:   in.Reference,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.CreateTransaction(tx); err != nil {
		return "", err
	}
	return tx.ID, nil
}

// CreateCheque registra un cheque (número único).
func (uc *UseCase) CreateCheque(in dto.CreateChequeRequest) (string, error) {
	if in.Number == "" || !in.Amount.GreaterThan(decimal.Zero) || in.DueDate.IsZero() {
		return "", domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetChequeByNumber(in.Number); err != nil {
		return "", err
	} else if existing != nil {
		return "", domain.ErrDuplicate
	}
	partyID, err := uc.resolveParty(in.PartyCode)
	if err != nil {
		return "", err
	}
	status := in.Status
	if status == "" {
		status = entity.ChequeStatusPortfolio
	}
	currency := in.Currency
	if currency == "" {
		currency = "TRY"
	}
	ch := &entity.Cheque{
		ID:        uuid.New().String(),
		Number:    in.Number,
		PartyID:   partyID,
		Amount:    in.Amount,
		Currency:  currency,
		DueDate:   in.DueDate,
		Status:    status,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.CreateCheque(ch); err != nil {
		return "", err
	}
	return ch.ID, nil
}

// ListTransactions lista transacciones con paginación.
func (uc *UseCase) ListTransactions(limit, offset int) ([]*entity.CashBankTx, error) {
	return uc.repo.ListTransactions(limit, offset)
}

// ListCheques lista cheques con paginación.
func (uc *UseCase) ListCheques(limit, offset int) ([]*entity.Cheque, error) {
	return uc.repo.ListCheques(limit, offset)
}

func (uc *UseCase) resolveParty(code string) (*string, error) {
	if code == "" {
		return nil, nil
	}
	party, err := uc.partyRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	return &party.ID, nil
}
