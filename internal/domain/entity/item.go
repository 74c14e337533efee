package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de artículo.
const (
	ItemCategoryRawMaterial  = "RAW_MATERIAL"
	ItemCategoryFinishedGood = "FINISHED_GOOD"
	ItemCategoryOther        = "OTHER"
)

// Métodos de costeo soportados. Solo promedio ponderado está implementado.
const CostMethodAverage = "AVERAGE"

// Item representa un artículo del maestro (materia prima, producto terminado u otro).
// Los campos de identidad son inmutables una vez referenciados por un movimiento;
// los descriptivos pueden cambiar.
type Item struct {
	ID         string
	Code       string // código único legible (ej. "10100-POLIOL")
	Name       string
	Category   string
	Unit       string          // unidad de medida (kg, unidad, etc.)
	VATRate    decimal.Decimal // porcentaje de IVA (ej. 20)
	MinStock   decimal.Decimal // umbral mínimo de stock
	CostMethod string
	Barcode    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
