package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/application/production"
	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

// ProductionHandler maneja las peticiones HTTP de órdenes de producción:
// apertura, consumo de materiales y reporte de producción.
type ProductionHandler struct {
	uc       *production.UseCase
	itemRepo repository.ItemRepository
	whRepo   repository.WarehouseRepository
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase, itemRepo repository.ItemRepository, whRepo repository.WarehouseRepository) *ProductionHandler {
	return &ProductionHandler{uc: uc, itemRepo: itemRepo, whRepo: whRepo}
}

// CreateWorkOrder godoc
// @Summary      Abrir orden de producción
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkOrderRequest  true  "product_code, target_qty"
// @Success      201   {object}  dto.WorkOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/wo [post]
func (h *ProductionHandler) CreateWorkOrder(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	product, err := h.itemRepo.GetByCode(in.ProductCode)
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return respondError(c, domain.ErrNotFound)
	}
	wo, err := h.uc.CreateWorkOrder(c.Context(), production.CreateWorkOrderInput{
		ProductID: product.ID,
		TargetQty: in.TargetQty,
		Notes:     in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWorkOrderResponse(wo))
}

// GetWorkOrder godoc
// @Summary      Detalle de una orden con consumos y producto terminado
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/wo/{id} [get]
func (h *ProductionHandler) GetWorkOrder(c *fiber.Ctx) error {
	wo, consumptions, finishedGoods, err := h.uc.GetWorkOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"work_order":     toWorkOrderResponse(wo),
		"consumptions":   consumptions,
		"finished_goods": finishedGoods,
	})
}

// ListWorkOrders godoc
// @Summary      Listar órdenes de producción
// @Tags         production
// @Produce      json
// @Success      200  {array}  dto.WorkOrderResponse
// @Router       /api/production/wo [get]
func (h *ProductionHandler) ListWorkOrders(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.ListWorkOrders(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.WorkOrderResponse, 0, len(list))
	for _, wo := range list {
		out = append(out, toWorkOrderResponse(wo))
	}
	return c.JSON(out)
}

// Consume godoc
// @Summary      Consumir material contra una orden
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumeRequest  true  "wo_id, item_code, quantity, warehouse_code"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/consume [post]
func (h *ProductionHandler) Consume(c *fiber.Ctx) error {
	var in dto.ConsumeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.itemRepo.GetByCode(in.ItemCode)
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return respondError(c, domain.ErrNotFound)
	}
	wh, err := h.whRepo.GetByCode(in.WarehouseCode)
	if err != nil {
		return respondError(c, err)
	}
	if wh == nil {
		return respondError(c, domain.ErrNotFound)
	}
	err = h.uc.Consume(c.Context(), production.ConsumeInput{
		WorkOrderID: in.WorkOrderID,
		ItemID:      item.ID,
		Quantity:    in.Quantity,
		WarehouseID: wh.ID,
		Reference:   in.Reference,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "consumo registrado"})
}

// Produce godoc
// @Summary      Reportar producción de una orden
// @Description  Calcula el costo de materiales contra los promedios vigentes,
// aplica el recargo de overhead y empuja el producto terminado a stock.
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduceRequest  true  "wo_id, quantity, warehouse_code, overhead_rate"
// @Success      201   {object}  dto.ProduceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/produce [post]
func (h *ProductionHandler) Produce(c *fiber.Ctx) error {
	var in dto.ProduceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	wh, err := h.whRepo.GetByCode(in.WarehouseCode)
	if err != nil {
		return respondError(c, err)
	}
	if wh == nil {
		return respondError(c, domain.ErrNotFound)
	}
	unitCost, err := h.uc.Produce(c.Context(), production.ProduceInput{
		WorkOrderID:  in.WorkOrderID,
		Quantity:     in.Quantity,
		WarehouseID:  wh.ID,
		OverheadRate: in.OverheadRate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProduceResponse{UnitCost: unitCost})
}

func toWorkOrderResponse(wo *entity.WorkOrder) dto.WorkOrderResponse {
	return dto.WorkOrderResponse{
		ID:          wo.ID,
		Number:      wo.Number,
		ProductID:   wo.ProductID,
		TargetQty:   wo.TargetQty,
		ProducedQty: wo.ProducedQty,
		Status:      wo.Status,
		StartDate:   wo.StartDate,
		Notes:       wo.Notes,
	}
}
