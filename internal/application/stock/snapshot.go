package stock

import (
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// SnapshotUseCase lectura del estado actual del libro: todos los balances con
// códigos resueltos. Es de solo lectura; dos snapshots sin escrituras
// intermedias devuelven lo mismo.
type SnapshotUseCase struct {
	balanceRepo  repository.StockBalanceRepository
	movementRepo repository.StockMovementRepository
}

// NewSnapshotUseCase construye el caso de uso (repos sobre el pool, sin tx).
func NewSnapshotUseCase(
	balanceRepo repository.StockBalanceRepository,
	movementRepo repository.StockMovementRepository,
) *SnapshotUseCase {
	return &SnapshotUseCase{balanceRepo: balanceRepo, movementRepo: movementRepo}
}

// Snapshot devuelve todos los balances del libro.
func (uc *SnapshotUseCase) Snapshot() ([]entity.StockSnapshotRow, error) {
	return uc.balanceRepo.Snapshot()
}

// Movements devuelve las últimas filas del log de movimientos.
func (uc *SnapshotUseCase) Movements(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	if itemID != "" {
		return uc.movementRepo.ListByItem(itemID, limit, offset)
	}
	return uc.movementRepo.List(limit, offset)
}
