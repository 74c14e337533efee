package entity

import "time"

// Warehouse representa una bodega. Es solo una dimensión para las claves del
// libro de costos: (artículo, bodega).
type Warehouse struct {
	ID        string
	Code      string // código único legible (ej. "MERKEZ-HAMMADDE")
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
