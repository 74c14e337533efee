package sales

import (
	"context"

	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// TxRunner abre la transacción para crear documentos: cabecera y líneas se
// persisten como una sola unidad atómica; si una línea falla no queda
// cabecera huérfana.
type TxRunner interface {
	RunDocument(ctx context.Context, fn func(docRepo repository.DocumentRepository) error) error
}
