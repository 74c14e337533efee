package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/application/stock"
	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP del motor de movimientos y las
// lecturas del libro de costos.
type StockHandler struct {
	moveUC     *stock.MoveUseCase
	snapshotUC *stock.SnapshotUseCase
	itemRepo   repository.ItemRepository
	whRepo     repository.WarehouseRepository
}

// NewStockHandler construye el handler.
func NewStockHandler(
	moveUC *stock.MoveUseCase,
	snapshotUC *stock.SnapshotUseCase,
	itemRepo repository.ItemRepository,
	whRepo repository.WarehouseRepository,
) *StockHandler {
	return &StockHandler{moveUC: moveUC, snapshotUC: snapshotUC, itemRepo: itemRepo, whRepo: whRepo}
}

// Move godoc
// @Summary      Registrar movimiento de stock (IN, OUT o TRANSFER)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMoveRequest  true  "item_code, from/to warehouse codes según el tipo, quantity, unit_price"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/move [post]
func (h *StockHandler) Move(c *fiber.Ctx) error {
	var in dto.StockMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	input := stock.MoveInput{
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Type:      in.Type,
		Reference: in.Reference,
	}
	item, err := h.itemRepo.GetByCode(in.ItemCode)
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return respondError(c, domain.ErrNotFound)
	}
	input.ItemID = item.ID

	if in.FromWarehouseCode != "" {
		wh, err := h.whRepo.GetByCode(in.FromWarehouseCode)
		if err != nil {
			return respondError(c, err)
		}
		if wh == nil {
			return respondError(c, domain.ErrNotFound)
		}
		input.FromWarehouseID = wh.ID
	}
	if in.ToWarehouseCode != "" {
		wh, err := h.whRepo.GetByCode(in.ToWarehouseCode)
		if err != nil {
			return respondError(c, err)
		}
		if wh == nil {
			return respondError(c, domain.ErrNotFound)
		}
		input.ToWarehouseID = wh.ID
	}

	if err := h.moveUC.Move(c.Context(), input); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// Snapshot godoc
// @Summary      Snapshot del stock actual por artículo y bodega
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.StockSnapshotRow
// @Router       /api/stock/snapshot [get]
func (h *StockHandler) Snapshot(c *fiber.Ctx) error {
	rows, err := h.snapshotUC.Snapshot()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockSnapshotRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockSnapshotRow{
			ItemCode:      r.ItemCode,
			WarehouseCode: r.WarehouseCode,
			Quantity:      r.Quantity,
			AvgCost:       r.AvgCost,
		})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Log de movimientos de stock
// @Tags         stock
// @Produce      json
// @Param        item_code  query  string  false  "Filtrar por artículo"
// @Param        limit      query  int     false  "Límite (default 50)"
// @Param        offset     query  int     false  "Offset"
// @Success      200  {array}  dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	itemID := ""
	if code := c.Query("item_code"); code != "" {
		item, err := h.itemRepo.GetByCode(code)
		if err != nil {
			return respondError(c, err)
		}
		if item == nil {
			return respondError(c, domain.ErrNotFound)
		}
		itemID = item.ID
	}
	movements, err := h.snapshotUC.Movements(itemID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:              m.ID,
			TransactionID:   m.TransactionID,
			ItemID:          m.ItemID,
			FromWarehouseID: m.FromWarehouseID,
			ToWarehouseID:   m.ToWarehouseID,
			Quantity:        m.Quantity,
			UnitPrice:       m.UnitPrice,
			Type:            m.Type,
			Reference:       m.Reference,
			At:              m.At,
		})
	}
	return c.JSON(out)
}
