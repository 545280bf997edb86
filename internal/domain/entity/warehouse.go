package entity

import "time"

// Warehouse representa una bodega de repuestos (almacén principal, hangar, etc.).
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
