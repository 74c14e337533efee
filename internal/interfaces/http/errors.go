package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/domain"
)

// respondError mapea errores de dominio a respuestas HTTP. Validación → 400,
// recurso inexistente → 404, conflictos de estado (stock, duplicados, orden
// cerrada) → 409, lo demás → 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingSource):
		return respond(c, fiber.StatusBadRequest, "MISSING_SOURCE", err)
	case errors.Is(err, domain.ErrMissingDestination):
		return respond(c, fiber.StatusBadRequest, "MISSING_DESTINATION", err)
	case errors.Is(err, domain.ErrMissingWarehouse):
		return respond(c, fiber.StatusBadRequest, "MISSING_WAREHOUSE", err)
	case errors.Is(err, domain.ErrInvalidMoveType):
		return respond(c, fiber.StatusBadRequest, "INVALID_MOVE_TYPE", err)
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", err)
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "DUPLICATE", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", err)
	case errors.Is(err, domain.ErrWorkOrderClosed):
		return respond(c, fiber.StatusConflict, "WORK_ORDER_CLOSED", err)
	default:
		return respond(c, fiber.StatusInternalServerError, "INTERNAL", err)
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
