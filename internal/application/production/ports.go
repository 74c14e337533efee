package production

import (
	"context"

	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// TxRunner abre la transacción para las operaciones de producción: consumo y
// producción tocan el libro de costos y los registros de la orden en una sola
// unidad atómica.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		balanceRepo repository.StockBalanceRepository,
		woRepo repository.WorkOrderRepository,
	) error) error
}
