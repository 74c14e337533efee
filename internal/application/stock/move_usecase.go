package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// MoveUseCase es el motor de movimientos de stock: valida y aplica
// IN / OUT / TRANSFER contra el libro de costos de forma transaccional,
// agregando un registro inmutable por cada pata.
type MoveUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
}

// NewMoveUseCase construye el caso de uso.
func NewMoveUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
) *MoveUseCase {
	return &MoveUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MoveInput entrada para aplicar un movimiento. Los identificadores vienen ya
// resueltos por la capa de servicio (código → UUID).
// IN requiere ToWarehouseID; OUT requiere FromWarehouseID; TRANSFER ambos.
type MoveInput struct {
	ItemID          string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	Type            string
	Reference       string
}

// Move aplica un movimiento dentro de una transacción. Un TRANSFER es
// lógicamente dos operaciones (salida en origen + entrada en destino) pero se
// confirma como unidad todo-o-nada: si la salida falla no queda ni registro ni
// mutación de ninguna de las dos patas.
func (uc *MoveUseCase) Move(ctx context.Context, input MoveInput) error {
	switch input.Type {
	case entity.MoveTypeIN:
		if input.ToWarehouseID == "" {
			return domain.ErrMissingDestination
		}
	case entity.MoveTypeOUT:
		if input.FromWarehouseID == "" {
			return domain.ErrMissingSource
		}
	case entity.MoveTypeTRANSFER:
		if input.FromWarehouseID == "" || input.ToWarehouseID == "" {
			return domain.ErrMissingWarehouse
		}
	default:
		return domain.ErrInvalidMoveType
	}
	if !input.Quantity.GreaterThan(decimal.Zero) || input.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}

	// Chequeo defensivo: el caller ya validó códigos, pero un identificador que
	// no resuelve en las tablas de dimensión se rechaza con NOT_FOUND.
	if err := uc.resolve(input); err != nil {
		return err
	}

	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		balanceRepo repository.StockBalanceRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		ledger := NewLedger(balanceRepo)
		switch input.Type {
		case entity.MoveTypeIN:
			return uc.doIN(ledger, movementRepo, input, now, txID)
		case entity.MoveTypeOUT:
			return uc.doOUT(ledger, movementRepo, input, now, txID)
		case entity.MoveTypeTRANSFER:
			return uc.doTRANSFER(ledger, movementRepo, input, now, txID)
		}
		return domain.ErrInvalidMoveType
	})
}

func (uc *MoveUseCase) resolve(input MoveInput) error {
	item, err := uc.itemRepo.GetByID(input.ItemID)
	if err != nil || item == nil {
		return domain.ErrNotFound
	}
	for _, whID := range []string{input.FromWarehouseID, input.ToWarehouseID} {
		if whID == "" {
			continue
		}
		wh, err := uc.warehouseRepo.GetByID(whID)
		if err != nil || wh == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// doIN: entrada valorada al precio unitario del caller; recalcula promedio.
func (uc *MoveUseCase) doIN(
	ledger *Ledger, movementRepo repository.StockMovementRepository,
	input MoveInput, now time.Time, txID string,
) error {
	if _, err := ledger.ApplyInbound(input.ItemID, input.ToWarehouseID, input.Quantity, input.UnitPrice); err != nil {
		return err
	}
	return movementRepo.Create(&entity.StockMovement{
		TransactionID: txID,
		ItemID:        input.ItemID,
		ToWarehouseID: &input.ToWarehouseID,
		Quantity:      input.Quantity,
		UnitPrice:     input.UnitPrice,
		Type:          entity.MoveTypeIN,
		Reference:     input.Reference,
		At:            now,
	})
}

// doOUT: salida al promedio vigente; el costo del balance no cambia.
func (uc *MoveUseCase) doOUT(
	ledger *Ledger, movementRepo repository.StockMovementRepository,
	input MoveInput, now time.Time, txID string,
) error {
	if _, err := ledger.ApplyOutbound(input.ItemID, input.FromWarehouseID, input.Quantity); err != nil {
		return err
	}
	return movementRepo.Create(&entity.StockMovement{
		TransactionID:   txID,
		ItemID:          input.ItemID,
		FromWarehouseID: &input.FromWarehouseID,
		Quantity:        input.Quantity,
		UnitPrice:       input.UnitPrice,
		Type:            entity.MoveTypeOUT,
		Reference:       input.Reference,
		At:              now,
	})
}

// doTRANSFER: salida en origen y entrada en destino valorada al precio
// unitario del caller (no al promedio del origen). Dos registros
// TRANSFER-OUT / TRANSFER-IN comparten referencia y TransactionID.
func (uc *MoveUseCase) doTRANSFER(
	ledger *Ledger, movementRepo repository.StockMovementRepository,
	input MoveInput, now time.Time, txID string,
) error {
	if _, err := ledger.ApplyOutbound(input.ItemID, input.FromWarehouseID, input.Quantity); err != nil {
		return err
	}
	if _, err := ledger.ApplyInbound(input.ItemID, input.ToWarehouseID, input.Quantity, input.UnitPrice); err != nil {
		return err
	}
	outMov := &entity.StockMovement{
		TransactionID:   txID,
		ItemID:          input.ItemID,
		FromWarehouseID: &input.FromWarehouseID,
		Quantity:        input.Quantity,
		UnitPrice:       input.UnitPrice,
		Type:            entity.MoveTypeTransferOut,
		Reference:       input.Reference,
		At:              now,
	}
	if err := movementRepo.Create(outMov); err != nil {
		return err
	}
	inMov := &entity.StockMovement{
		TransactionID: txID,
		ItemID:        input.ItemID,
		ToWarehouseID: &input.ToWarehouseID,
		Quantity:      input.Quantity,
		UnitPrice:     input.UnitPrice,
		Type:          entity.MoveTypeTransferIn,
		Reference:     input.Reference,
		At:            now,
	}
	return movementRepo.Create(inMov)
}
