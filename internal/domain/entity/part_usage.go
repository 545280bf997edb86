package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartUsage registra el consumo de un repuesto dentro de una orden de trabajo.
// Es narrativa de consumo, no asiento del ledger: los asientos los producen los
// movimientos COMPLETED. Se crean y borran libremente mientras la orden no esté
// liberada.
type PartUsage struct {
	ID          string
	WorkOrderID string
	PartNumber  string
	Quantity    decimal.Decimal
	StockItemID *string // vínculo opcional al ítem de stock consumido
	Notes       string
	CreatedAt   time.Time
}
