package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa la existencia de un repuesto (part number) en una bodega.
// Invariantes: AvailableQuantity == Quantity - ReservedQuantity después de toda
// mutación; ReservedQuantity <= Quantity; ninguna cantidad es negativa.
type StockItem struct {
	ID                string
	PartNumber        string
	WarehouseID       string
	Quantity          decimal.Decimal // en mano
	ReservedQuantity  decimal.Decimal // apartada para órdenes de trabajo
	AvailableQuantity decimal.Decimal // derivada: Quantity - ReservedQuantity
	MinStock          decimal.Decimal
	ReorderPoint      decimal.Decimal
	UnitCost          *decimal.Decimal
	TotalValue        *decimal.Decimal // derivado: UnitCost * Quantity
	ExpiryDate        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // soft delete; nil = activo
}

// ApplyDeltas suma los deltas de cantidad y reserva y recalcula los derivados.
// No valida signos: los callers (reserva, liberación, ajuste, movimiento) deben
// pre-validar la no-negatividad antes de llamar.
func (s *StockItem) ApplyDeltas(quantityDelta, reservedDelta decimal.Decimal) {
	s.Quantity = s.Quantity.Add(quantityDelta)
	s.ReservedQuantity = s.ReservedQuantity.Add(reservedDelta)
	s.RecalcDerived()
}

// RecalcDerived recalcula AvailableQuantity y TotalValue.
func (s *StockItem) RecalcDerived() {
	s.AvailableQuantity = s.Quantity.Sub(s.ReservedQuantity)
	if s.UnitCost != nil {
		tv := s.UnitCost.Mul(s.Quantity)
		s.TotalValue = &tv
	}
}

// BelowReorderPoint indica si el ítem está en o por debajo de su punto de reorden.
func (s *StockItem) BelowReorderPoint() bool {
	return s.AvailableQuantity.LessThanOrEqual(s.ReorderPoint)
}
