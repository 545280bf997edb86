package dto

import "time"

// CreateWorkOrderRequest body para POST /api/work-orders.
// Si assigned_to viene, la orden nace OPEN; si no, DRAFT.
type CreateWorkOrderRequest struct {
	AircraftID     string     `json:"aircraft_id"`
	Type           string     `json:"type"`
	Priority       string     `json:"priority"`
	Description    string     `json:"description"`
	AssignedTo     *string    `json:"assigned_to,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
}

// UpdateWorkOrderRequest body para PUT /api/work-orders/:id.
type UpdateWorkOrderRequest struct {
	Type           *string    `json:"type,omitempty"`
	Priority       *string    `json:"priority,omitempty"`
	Description    *string    `json:"description,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
}

// UpdateWorkOrderStatusRequest body para PATCH /api/work-orders/:id/status.
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignWorkOrderRequest body para PATCH /api/work-orders/:id/assign.
type AssignWorkOrderRequest struct {
	UserID string `json:"user_id"`
}

// CompleteWorkOrderRequest body para POST /api/work-orders/:id/complete.
type CompleteWorkOrderRequest struct {
	Notes string `json:"notes,omitempty"`
}

// WorkOrderResponse representación de una orden de trabajo.
type WorkOrderResponse struct {
	ID              string     `json:"id"`
	OrderNumber     string     `json:"order_number"`
	AircraftID      string     `json:"aircraft_id"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	Description     string     `json:"description,omitempty"`
	AssignedTo      *string    `json:"assigned_to,omitempty"`
	AssignedAt      *time.Time `json:"assigned_at,omitempty"`
	ScheduledStart  *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd    *time.Time `json:"scheduled_end,omitempty"`
	ActualStart     *time.Time `json:"actual_start,omitempty"`
	ActualEnd       *time.Time `json:"actual_end,omitempty"`
	CompletedBy     *string    `json:"completed_by,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	ReleasedBy      *string    `json:"released_by,omitempty"`
	ReleasedAt      *time.Time `json:"released_at,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// WorkOrderDetailResponse orden con su checklist y consumos.
type WorkOrderDetailResponse struct {
	WorkOrderResponse
	Tasks []TaskResponse      `json:"tasks"`
	Parts []PartUsageResponse `json:"parts"`
}

// WorkOrderListResponse listado paginado de órdenes.
type WorkOrderListResponse struct {
	Items []WorkOrderResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
