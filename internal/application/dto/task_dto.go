package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTaskRequest body para POST /api/work-orders/:id/tasks.
type CreateTaskRequest struct {
	Sequence    int    `json:"sequence"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsRii       bool   `json:"is_rii"`
}

// CreateTasksRequest alta en lote de tareas.
type CreateTasksRequest struct {
	Tasks []CreateTaskRequest `json:"tasks"`
}

// UpdateTaskRequest body para PUT /api/tasks/:id.
type UpdateTaskRequest struct {
	Sequence    *int    `json:"sequence,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateTaskStatusRequest body para PATCH /api/tasks/:id/status.
// COMPLETED sobre una tarea RII se rechaza: solo SignOffRii la completa.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse representación de una tarea del checklist.
type TaskResponse struct {
	ID          string     `json:"id"`
	WorkOrderID string     `json:"work_order_id"`
	Sequence    int        `json:"sequence"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	IsRii       bool       `json:"is_rii"`
	InspectedBy *string    `json:"inspected_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AddPartRequest body para POST /api/work-orders/:id/parts.
type AddPartRequest struct {
	PartNumber  string          `json:"part_number"`
	Quantity    decimal.Decimal `json:"quantity"`
	StockItemID *string         `json:"stock_item_id,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// PartUsageResponse representación de un consumo de repuesto.
type PartUsageResponse struct {
	ID          string          `json:"id"`
	WorkOrderID string          `json:"work_order_id"`
	PartNumber  string          `json:"part_number"`
	Quantity    decimal.Decimal `json:"quantity"`
	StockItemID *string         `json:"stock_item_id,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
