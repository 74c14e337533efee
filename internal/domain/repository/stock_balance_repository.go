package repository

import "github.com/invorya/erp-mes-api/internal/domain/entity"

// StockBalanceRepository define el puerto para el libro de costos (una fila por
// artículo+bodega). Usado dentro de transacciones para garantizar consistencia.
type StockBalanceRepository interface {
	// Get devuelve el balance, o uno en cero si la fila aún no existe.
	Get(itemID, warehouseID string) (*entity.StockBalance, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(itemID, warehouseID string) (*entity.StockBalance, error)
	Upsert(balance *entity.StockBalance) error
	// GetAnyByItem devuelve la primera fila de balance del artículo en cualquier
	// bodega, o nil si no hay ninguna. Base de costo del costeo de producción.
	GetAnyByItem(itemID string) (*entity.StockBalance, error)
	// Snapshot lista todos los balances con códigos de artículo y bodega resueltos.
	Snapshot() ([]entity.StockSnapshotRow, error)
}
