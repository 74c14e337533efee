package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/application/finance"
)

// FinanceHandler maneja las peticiones HTTP de caja/banco y cheques.
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// CreateAccount godoc
// @Summary      Crear cuenta de caja o banco
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "account_type (CASH|BANK), name"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/accounts [post]
func (h *FinanceHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.CreateAccount(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// CreateTransaction godoc
// @Summary      Registrar transacción de caja o banco
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTxRequest  true  "account_type, account_name, direction (IN|OUT), amount"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finance/tx [post]
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTxRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.CreateTransaction(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// ListTransactions godoc
// @Summary      Listar transacciones de caja/banco
// @Tags         finance
// @Produce      json
// @Success      200  {array}  entity.CashBankTx
// @Router       /api/finance/tx [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.ListTransactions(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateCheque godoc
// @Summary      Registrar cheque
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChequeRequest  true  "number, amount, due_date"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/cheques [post]
func (h *FinanceHandler) CreateCheque(c *fiber.Ctx) error {
	var in dto.CreateChequeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.CreateCheque(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// ListCheques godoc
// @Summary      Listar cheques
// @Tags         finance
// @Produce      json
// @Success      200  {array}  entity.Cheque
// @Router       /api/finance/cheques [get]
func (h *FinanceHandler) ListCheques(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.ListCheques(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
