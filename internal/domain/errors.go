package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrWorkOrderClosed    = errors.New("orden de producción cerrada o inexistente")
	ErrInvalidMoveType    = errors.New("tipo de movimiento inválido")
	ErrMissingSource      = errors.New("movimiento OUT requiere bodega origen")
	ErrMissingDestination = errors.New("movimiento IN requiere bodega destino")
	ErrMissingWarehouse   = errors.New("TRANSFER requiere bodega origen y destino")
)
