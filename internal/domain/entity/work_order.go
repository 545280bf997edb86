package entity

import "time"

// WorkOrderStatus estado del ciclo de vida de una orden de trabajo de mantenimiento.
type WorkOrderStatus string

const (
	WorkOrderStatusDraft      WorkOrderStatus = "DRAFT"
	WorkOrderStatusOpen       WorkOrderStatus = "OPEN"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderStatusReleased   WorkOrderStatus = "RELEASED"
	WorkOrderStatusCancelled  WorkOrderStatus = "CANCELLED"
)

// Valid indica si el estado pertenece al conjunto cerrado.
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusDraft, WorkOrderStatusOpen, WorkOrderStatusInProgress,
		WorkOrderStatusCompleted, WorkOrderStatusReleased, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo regla central de transición: RELEASED es terminal y
// CANCELLED solo puede reabrirse a DRAFT. COMPLETED y RELEASED nunca son
// alcanzables por un cambio de estado genérico: solo Complete (que verifica el
// checklist RII) y Release (que exige COMPLETED y firma de inspector) llegan ahí.
func (s WorkOrderStatus) CanTransitionTo(target WorkOrderStatus) bool {
	if !target.Valid() {
		return false
	}
	switch target {
	case WorkOrderStatusCompleted, WorkOrderStatusReleased:
		return false
	}
	switch s {
	case WorkOrderStatusReleased:
		return false
	case WorkOrderStatusCancelled:
		return target == WorkOrderStatusDraft
	}
	return true
}

// Prioridades de orden de trabajo.
const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

// Tipos de orden de trabajo.
const (
	WorkOrderTypeScheduled    = "SCHEDULED"   // mantenimiento programado
	WorkOrderTypeUnscheduled  = "UNSCHEDULED" // falla reportada
	WorkOrderTypeInspection   = "INSPECTION"  // inspección periódica
	WorkOrderTypeModification = "MODIFICATION"
)

// WorkOrder representa un trabajo de mantenimiento sobre una aeronave.
// Una orden RELEASED certifica aeronavegabilidad y queda inmutable.
type WorkOrder struct {
	ID              string
	OrderNumber     string // WO-<año>-<consecutivo anual>
	AircraftID      string
	Type            string
	Status          WorkOrderStatus
	Priority        string
	Description     string
	AssignedTo      *string
	AssignedAt      *time.Time
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time
	ActualStart     *time.Time
	ActualEnd       *time.Time
	CompletedBy     *string
	CompletedAt     *time.Time
	ReleasedBy      *string
	ReleasedAt      *time.Time
	CompletionNotes string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // soft delete; nil = activa
}

// Released indica si la orden ya fue liberada (inmutable).
func (w *WorkOrder) Released() bool {
	return w.Status == WorkOrderStatusReleased
}

// Active indica si la orden está abierta o en progreso (bloquea su eliminación).
func (w *WorkOrder) Active() bool {
	return w.Status == WorkOrderStatusOpen || w.Status == WorkOrderStatusInProgress
}
