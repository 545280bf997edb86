package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de transacción de stock.
type MovementType string

const (
	MovementTypeReceipt    MovementType = "RECEIPT"    // recepción de compra
	MovementTypeIssue      MovementType = "ISSUE"      // salida a orden de trabajo
	MovementTypeTransfer   MovementType = "TRANSFER"   // traslado entre bodegas
	MovementTypeAdjustment MovementType = "ADJUSTMENT" // corrección de existencias
	MovementTypeCount      MovementType = "COUNT"      // conteo físico (delta pre-calculado)
	MovementTypeReturn     MovementType = "RETURN"     // devolución a bodega
	MovementTypeScrap      MovementType = "SCRAP"      // baja por daño/desecho
)

// movementPrefixes prefijo del consecutivo por tipo (ej. REC-20260831-0001).
var movementPrefixes = map[MovementType]string{
	MovementTypeReceipt:    "REC",
	MovementTypeIssue:      "ISS",
	MovementTypeTransfer:   "TRF",
	MovementTypeAdjustment: "ADJ",
	MovementTypeCount:      "CNT",
	MovementTypeReturn:     "RET",
	MovementTypeScrap:      "SCR",
}

// Valid indica si el tipo pertenece al conjunto cerrado.
func (t MovementType) Valid() bool {
	_, ok := movementPrefixes[t]
	return ok
}

// Prefix devuelve el prefijo del consecutivo para el tipo.
func (t MovementType) Prefix() string {
	return movementPrefixes[t]
}

// MovementStatus estado del ciclo de vida de un movimiento.
type MovementStatus string

const (
	MovementStatusPending   MovementStatus = "PENDING"
	MovementStatusApproved  MovementStatus = "APPROVED"
	MovementStatusCompleted MovementStatus = "COMPLETED"
	MovementStatusCancelled MovementStatus = "CANCELLED"
)

// movementTransitions tabla central de transiciones válidas.
// COMPLETED y CANCELLED son terminales.
var movementTransitions = map[MovementStatus][]MovementStatus{
	MovementStatusPending:  {MovementStatusApproved, MovementStatusCancelled},
	MovementStatusApproved: {MovementStatusCompleted, MovementStatusCancelled},
}

// CanTransitionTo consulta la tabla de transiciones.
func (s MovementStatus) CanTransitionTo(target MovementStatus) bool {
	for _, next := range movementTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (s MovementStatus) Terminal() bool {
	return len(movementTransitions[s]) == 0
}

// Movement representa una transacción de stock tipada. El ledger solo se afecta
// cuando el movimiento llega a COMPLETED; una vez COMPLETED es inmutable.
type Movement struct {
	ID              string
	MovementNumber  string // <PREFIJO>-<YYYYMMDD>-<consecutivo diario por tipo>
	Type            MovementType
	Status          MovementStatus
	StockItemID     *string // opcional; TRANSFER no afecta una fila única del ledger
	FromWarehouseID *string
	ToWarehouseID   *string
	Quantity        decimal.Decimal // magnitud, o delta con signo en ADJUSTMENT/COUNT
	UnitCost        *decimal.Decimal
	TotalCost       *decimal.Decimal // derivado: UnitCost * Quantity
	Reference       string
	Notes           string
	RequestedBy     string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecalcTotalCost recalcula TotalCost cuando hay costo unitario.
func (m *Movement) RecalcTotalCost() {
	if m.UnitCost == nil {
		m.TotalCost = nil
		return
	}
	tc := m.UnitCost.Mul(m.Quantity)
	m.TotalCost = &tc
}
