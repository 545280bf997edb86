package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

const workOrderColumns = `id, order_number, aircraft_id, type, status, priority, description,
	assigned_to, assigned_at, scheduled_start, scheduled_end, actual_start, actual_end,
	completed_by, completed_at, released_by, released_at, completion_notes,
	created_at, updated_at, deleted_at`

// WorkOrderRepo implementación de WorkOrderRepository sobre PostgreSQL (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador de órdenes de trabajo. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste una nueva orden de trabajo.
func (r *WorkOrderRepo) Create(wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (id, order_number, aircraft_id, type, status, priority, description,
			assigned_to, assigned_at, scheduled_start, scheduled_end, actual_start, actual_end,
			completed_by, completed_at, released_by, released_at, completion_notes,
			created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		wo.ID, wo.OrderNumber, wo.AircraftID, wo.Type, wo.Status, wo.Priority, wo.Description,
		wo.AssignedTo, wo.AssignedAt, wo.ScheduledStart, wo.ScheduledEnd, wo.ActualStart, wo.ActualEnd,
		wo.CompletedBy, wo.CompletedAt, wo.ReleasedBy, wo.ReleasedAt, wo.CompletionNotes,
		wo.CreatedAt, wo.UpdatedAt, wo.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden activa por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get work order")
}

// GetForUpdate obtiene una orden activa y bloquea la fila (SELECT FOR UPDATE).
func (r *WorkOrderRepo) GetForUpdate(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get work order for update")
}

// Update persiste el estado, asignación y sellos de la orden.
func (r *WorkOrderRepo) Update(wo *entity.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET type = $2, status = $3, priority = $4, description = $5, assigned_to = $6, assigned_at = $7,
			scheduled_start = $8, scheduled_end = $9, actual_start = $10, actual_end = $11,
			completed_by = $12, completed_at = $13, released_by = $14, released_at = $15,
			completion_notes = $16, updated_at = $17
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		wo.ID, wo.Type, wo.Status, wo.Priority, wo.Description, wo.AssignedTo, wo.AssignedAt,
		wo.ScheduledStart, wo.ScheduledEnd, wo.ActualStart, wo.ActualEnd,
		wo.CompletedBy, wo.CompletedAt, wo.ReleasedBy, wo.ReleasedAt,
		wo.CompletionNotes, wo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista órdenes activas, opcionalmente filtradas por estado, paginadas.
func (r *WorkOrderRepo) List(status entity.WorkOrderStatus, limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + `
		FROM work_orders
		WHERE deleted_at IS NULL AND ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListByAircraft lista el historial de órdenes de una aeronave, paginado.
func (r *WorkOrderRepo) ListByAircraft(aircraftID string, limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + `
		FROM work_orders
		WHERE deleted_at IS NULL AND aircraft_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, aircraftID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work orders by aircraft: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// SoftDelete marca la orden como eliminada conservando el histórico.
func (r *WorkOrderRepo) SoftDelete(id string, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE work_orders SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete work order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *WorkOrderRepo) scanOne(row pgx.Row, op string) (*entity.WorkOrder, error) {
	var w entity.WorkOrder
	err := row.Scan(
		&w.ID, &w.OrderNumber, &w.AircraftID, &w.Type, &w.Status, &w.Priority, &w.Description,
		&w.AssignedTo, &w.AssignedAt, &w.ScheduledStart, &w.ScheduledEnd, &w.ActualStart, &w.ActualEnd,
		&w.CompletedBy, &w.CompletedAt, &w.ReleasedBy, &w.ReleasedAt, &w.CompletionNotes,
		&w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &w, nil
}

func (r *WorkOrderRepo) scanList(rows pgx.Rows) ([]*entity.WorkOrder, error) {
	var list []*entity.WorkOrder
	for rows.Next() {
		var w entity.WorkOrder
		if err := rows.Scan(
			&w.ID, &w.OrderNumber, &w.AircraftID, &w.Type, &w.Status, &w.Priority, &w.Description,
			&w.AssignedTo, &w.AssignedAt, &w.ScheduledStart, &w.ScheduledEnd, &w.ActualStart, &w.ActualEnd,
			&w.CompletedBy, &w.CompletedAt, &w.ReleasedBy, &w.ReleasedAt, &w.CompletionNotes,
			&w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
