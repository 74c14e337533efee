package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/application/sales"
)

// DocumentHandler maneja las peticiones HTTP de documentos de venta.
type DocumentHandler struct {
	uc *sales.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *sales.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear documento de venta (QUOTE, ORDER, DISPATCH o INVOICE)
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "doc_type, party_code, lines"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/docs [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener documento por ID
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/docs/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar documentos, opcionalmente por tipo
// @Tags         documents
// @Produce      json
// @Param        doc_type  query  string  false  "QUOTE | ORDER | DISPATCH | INVOICE"
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/docs [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.List(c.Query("doc_type"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
