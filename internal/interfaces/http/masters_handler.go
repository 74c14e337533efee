package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/application/masters"
)

// MastersHandler maneja las peticiones HTTP de los maestros: artículos,
// bodegas y terceros.
type MastersHandler struct {
	itemUC      *masters.ItemUseCase
	warehouseUC *masters.WarehouseUseCase
	partyUC     *masters.PartyUseCase
}

// NewMastersHandler construye el handler.
func NewMastersHandler(itemUC *masters.ItemUseCase, warehouseUC *masters.WarehouseUseCase, partyUC *masters.PartyUseCase) *MastersHandler {
	return &MastersHandler{itemUC: itemUC, warehouseUC: warehouseUC, partyUC: partyUC}
}

// CreateItem godoc
// @Summary      Crear artículo
// @Tags         masters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "code, name, category, unit, vat_rate"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *MastersHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.itemUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetItem godoc
// @Summary      Obtener artículo por código
// @Tags         masters
// @Produce      json
// @Param        code  path  string  true  "Código del artículo"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{code} [get]
func (h *MastersHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.itemUC.GetByCode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar artículos
// @Tags         masters
// @Produce      json
// @Param        limit   query  int  false  "Límite (default 50)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *MastersHandler) ListItems(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.itemUC.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateWarehouse godoc
// @Summary      Crear bodega
// @Tags         masters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "code, name"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *MastersHandler) CreateWarehouse(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.warehouseUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListWarehouses godoc
// @Summary      Listar bodegas
// @Tags         masters
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *MastersHandler) ListWarehouses(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.warehouseUC.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateParty godoc
// @Summary      Crear tercero (cliente o proveedor)
// @Tags         masters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartyRequest  true  "code, name, type (CUSTOMER|SUPPLIER)"
// @Success      201   {object}  dto.PartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parties [post]
func (h *MastersHandler) CreateParty(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.partyUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListParties godoc
// @Summary      Listar terceros
// @Tags         masters
// @Produce      json
// @Success      200  {array}  dto.PartyResponse
// @Router       /api/parties [get]
func (h *MastersHandler) ListParties(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.partyUC.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.DefaultPage()
	return page
}
