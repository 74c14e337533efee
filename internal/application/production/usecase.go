package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/costing"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"

	"github.com/invorya/erp-mes-api/internal/application/stock"
)

// UseCase es el motor de costeo de producción: descarga materiales del libro
// de costos y devuelve producto terminado valorado al promedio de los
// consumos más un recargo de overhead.
type UseCase struct {
	txRunner      TxRunner
	woRepo        repository.WorkOrderRepository
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	woRepo repository.WorkOrderRepository,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		woRepo:        woRepo,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateWorkOrderInput entrada para abrir una orden de producción.
type CreateWorkOrderInput struct {
	ProductID string
	TargetQty decimal.Decimal
	Notes     string
}

// CreateWorkOrder abre una orden numerada WO{yy}-{seq:06d} en estado IN_PROGRESS.
func (uc *UseCase) CreateWorkOrder(ctx context.Context, input CreateWorkOrderInput) (*entity.WorkOrder, error) {
	if !input.TargetQty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.itemRepo.GetByID(input.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	seq, err := uc.woRepo.NextSequence()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	wo := &entity.WorkOrder{
		ID:          uuid.New().String(),
		Number:      fmt.Sprintf("WO%s-%06d", now.Format("06"), seq),
		ProductID:   input.ProductID,
		TargetQty:   input.TargetQty,
		ProducedQty: decimal.Zero,
		Status:      entity.WorkOrderStatusInProgress,
		StartDate:   now,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.woRepo.Create(wo); err != nil {
		return nil, err
	}
	return wo, nil
}

// GetWorkOrder devuelve la orden con sus consumos y producto terminado.
func (uc *UseCase) GetWorkOrder(id string) (*entity.WorkOrder, []*entity.WorkOrderConsumption, []*entity.WorkOrderFinishedGood, error) {
	wo, err := uc.woRepo.GetByID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	if wo == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	cons, err := uc.woRepo.ListConsumptions(id)
	if err != nil {
		return nil, nil, nil, err
	}
	fgs, err := uc.woRepo.ListFinishedGoods(id)
	if err != nil {
		return nil, nil, nil, err
	}
	return wo, cons, fgs, nil
}

// ListWorkOrders lista órdenes con paginación.
func (uc *UseCase) ListWorkOrders(limit, offset int) ([]*entity.WorkOrder, error) {
	return uc.woRepo.List(limit, offset)
}

// ConsumeInput entrada para cargar material a una orden.
type ConsumeInput struct {
	WorkOrderID string
	ItemID      string
	Quantity    decimal.Decimal
	WarehouseID string
	Reference   string
}

// Consume descarga material del libro (salida estricta, sin stock negativo) y
// agrega el registro de consumo a la orden. No produce ningún efecto sobre el
// producto terminado.
func (uc *UseCase) Consume(ctx context.Context, input ConsumeInput) error {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if err := uc.resolveItemAndWarehouse(input.ItemID, input.WarehouseID); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.RunProduction(ctx, func(
		balanceRepo repository.StockBalanceRepository,
		woRepo repository.WorkOrderRepository,
	) error {
		wo, err := woRepo.GetForUpdate(input.WorkOrderID)
		if err != nil {
			return err
		}
		if wo == nil {
			return domain.ErrNotFound
		}
		if !wo.IsOpen() {
			return domain.ErrWorkOrderClosed
		}
		ledger := stock.NewLedger(balanceRepo)
		if _, err := ledger.ApplyOutbound(input.ItemID, input.WarehouseID, input.Quantity); err != nil {
			return err
		}
		return woRepo.AddConsumption(&entity.WorkOrderConsumption{
			ID:          uuid.New().String(),
			WorkOrderID: wo.ID,
			ItemID:      input.ItemID,
			Quantity:    input.Quantity,
			WarehouseID: input.WarehouseID,
			Reference:   input.Reference,
			CreatedAt:   now,
		})
	})
}

// ProduceInput entrada para reportar producción de una orden.
type ProduceInput struct {
	WorkOrderID  string
	Quantity     decimal.Decimal
	WarehouseID  string
	OverheadRate decimal.Decimal
}

// Produce calcula el costo de materiales de la orden contra los promedios
// vigentes del libro, deriva el costo unitario con overhead y empuja el
// producto terminado a stock como entrada a ese costo. El costo base de cada
// consumo se toma de la primera fila de balance del artículo en cualquier
// bodega, no de la bodega de donde salió el material.
// Devuelve el costo unitario redondeado a 3 decimales.
func (uc *UseCase) Produce(ctx context.Context, input ProduceInput) (decimal.Decimal, error) {
	if input.Quantity.IsNegative() || input.OverheadRate.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil || wh == nil {
		return decimal.Zero, domain.ErrNotFound
	}

	var unitCost decimal.Decimal
	err = uc.txRunner.RunProduction(ctx, func(
		balanceRepo repository.StockBalanceRepository,
		woRepo repository.WorkOrderRepository,
	) error {
		wo, err := woRepo.GetForUpdate(input.WorkOrderID)
		if err != nil {
			return err
		}
		if wo == nil {
			return domain.ErrNotFound
		}
		if !wo.IsOpen() {
			return domain.ErrWorkOrderClosed
		}

		cons, err := woRepo.ListConsumptions(wo.ID)
		if err != nil {
			return err
		}
		materialCost := decimal.Zero
		for _, c := range cons {
			bal, err := balanceRepo.GetAnyByItem(c.ItemID)
			if err != nil {
				return err
			}
			avg := decimal.Zero
			if bal != nil {
				avg = bal.AvgCost
			}
			materialCost = materialCost.Add(avg.Mul(c.Quantity))
		}
		unitCost = costing.ProductionUnitCost(materialCost, input.OverheadRate, input.Quantity)

		// Con cantidad cero no hay entrada al libro, pero el registro de producto
		// terminado se agrega igual, como hace el resto del historial.
		if input.Quantity.GreaterThan(decimal.Zero) {
			ledger := stock.NewLedger(balanceRepo)
			if _, err := ledger.ApplyInbound(wo.ProductID, input.WarehouseID, input.Quantity, unitCost); err != nil {
				return err
			}
		}
		if err := woRepo.AddFinishedGood(&entity.WorkOrderFinishedGood{
			ID:          uuid.New().String(),
			WorkOrderID: wo.ID,
			ProductID:   wo.ProductID,
			Quantity:    input.Quantity,
			WarehouseID: input.WarehouseID,
			UnitCost:    unitCost,
			CreatedAt:   time.Now(),
		}); err != nil {
			return err
		}
		return woRepo.UpdateProducedQty(wo.ID, wo.ProducedQty.Add(input.Quantity))
	})
	if err != nil {
		return decimal.Zero, err
	}
	return unitCost.Round(3), nil
}

func (uc *UseCase) resolveItemAndWarehouse(itemID, warehouseID string) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil || item == nil {
		return domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil || wh == nil {
		return domain.ErrNotFound
	}
	return nil
}
