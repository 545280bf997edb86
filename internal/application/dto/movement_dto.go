package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/movements.
// Requisitos de bodega por tipo: RECEIPT/RETURN exigen to_warehouse_id;
// ISSUE/SCRAP/ADJUSTMENT/COUNT exigen from_warehouse_id; TRANSFER exige ambas y distintas.
type CreateMovementRequest struct {
	Type            string           `json:"type"`
	StockItemID     *string          `json:"stock_item_id,omitempty"`
	FromWarehouseID *string          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *string          `json:"to_warehouse_id,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// UpdateMovementRequest body para PUT /api/movements/:id (solo en PENDING).
type UpdateMovementRequest struct {
	Quantity  *decimal.Decimal `json:"quantity,omitempty"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
	Reference *string          `json:"reference,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
}

// MovementResponse representación de un movimiento.
type MovementResponse struct {
	ID              string           `json:"id"`
	MovementNumber  string           `json:"movement_number"`
	Type            string           `json:"type"`
	Status          string           `json:"status"`
	StockItemID     *string          `json:"stock_item_id,omitempty"`
	FromWarehouseID *string          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *string          `json:"to_warehouse_id,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	TotalCost       *decimal.Decimal `json:"total_cost,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	RequestedBy     string           `json:"requested_by"`
	ApprovedBy      *string          `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time       `json:"approved_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
