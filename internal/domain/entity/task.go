package entity

import "time"

// TaskStatus estado de una tarea del checklist de una orden de trabajo.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusSkipped    TaskStatus = "SKIPPED"
)

// Valid indica si el estado pertenece al conjunto cerrado.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusSkipped:
		return true
	}
	return false
}

// Task es una tarea del checklist de una orden de trabajo, ordenada por Sequence.
// Las tareas RII (Required Inspection Item) solo se completan con la firma de un
// inspector (SignOffRii); la orden no puede completarse con RII sin firmar.
type Task struct {
	ID          string
	WorkOrderID string
	Sequence    int
	Title       string
	Description string
	Status      TaskStatus
	IsRii       bool
	InspectedBy *string    // inspector que firmó (solo RII)
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
