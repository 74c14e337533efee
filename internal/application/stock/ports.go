package stock

import (
	"context"

	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// mutación del libro + registro de movimiento se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		balanceRepo repository.StockBalanceRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
