package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest body para POST /api/stock-items (alta por recepción inicial).
type CreateStockItemRequest struct {
	PartNumber   string           `json:"part_number"`
	WarehouseID  string           `json:"warehouse_id"`
	Quantity     decimal.Decimal  `json:"quantity"`
	MinStock     decimal.Decimal  `json:"min_stock"`
	ReorderPoint decimal.Decimal  `json:"reorder_point"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	ExpiryDate   *time.Time       `json:"expiry_date,omitempty"`
}

// QuantityRequest body para reservar o liberar cantidad de un ítem.
type QuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// AdjustQuantityRequest body para ajustar la existencia (delta con signo:
// corrección, daño, pérdida, hallazgo).
type AdjustQuantityRequest struct {
	Delta decimal.Decimal `json:"delta"`
	Notes string          `json:"notes,omitempty"`
}

// StockItemResponse representación de un ítem de stock.
type StockItemResponse struct {
	ID                string           `json:"id"`
	PartNumber        string           `json:"part_number"`
	WarehouseID       string           `json:"warehouse_id"`
	Quantity          decimal.Decimal  `json:"quantity"`
	ReservedQuantity  decimal.Decimal  `json:"reserved_quantity"`
	AvailableQuantity decimal.Decimal  `json:"available_quantity"`
	MinStock          decimal.Decimal  `json:"min_stock"`
	ReorderPoint      decimal.Decimal  `json:"reorder_point"`
	UnitCost          *decimal.Decimal `json:"unit_cost,omitempty"`
	TotalValue        *decimal.Decimal `json:"total_value,omitempty"`
	ExpiryDate        *time.Time       `json:"expiry_date,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// StockItemListResponse listado paginado de ítems.
type StockItemListResponse struct {
	Items []StockItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// LowStockItemDTO sugerencia de reposición para un ítem en o bajo su punto de reorden.
type LowStockItemDTO struct {
	StockItemID       string          `json:"stock_item_id"`
	PartNumber        string          `json:"part_number"`
	WarehouseID       string          `json:"warehouse_id"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	ReorderPoint      decimal.Decimal `json:"reorder_point"`
	IdealStock        decimal.Decimal `json:"ideal_stock"`         // ReorderPoint * 1.5
	SuggestedOrderQty decimal.Decimal `json:"suggested_order_qty"` // IdealStock - AvailableQuantity
}
