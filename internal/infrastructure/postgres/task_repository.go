package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, work_order_id, sequence, title, description, status, is_rii,
	inspected_by, completed_at, created_at, updated_at`

// TaskRepo implementación de TaskRepository sobre PostgreSQL (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador de tareas. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una tarea del checklist.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, work_order_id, sequence, title, description, status, is_rii,
			inspected_by, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.WorkOrderID, task.Sequence, task.Title, task.Description, task.Status,
		task.IsRii, task.InspectedBy, task.CompletedAt, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// CreateBatch persiste varias tareas (se usa dentro de la tx de creación de la orden).
func (r *TaskRepo) CreateBatch(tasks []*entity.Task) error {
	for _, task := range tasks {
		if err := r.Create(task); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.WorkOrderID, &t.Sequence, &t.Title, &t.Description, &t.Status, &t.IsRii,
		&t.InspectedBy, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// Update persiste estado, firma de inspección y campos editables de la tarea.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks
		SET sequence = $2, title = $3, description = $4, status = $5, is_rii = $6,
			inspected_by = $7, completed_at = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		task.ID, task.Sequence, task.Title, task.Description, task.Status, task.IsRii,
		task.InspectedBy, task.CompletedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByWorkOrder lista el checklist de una orden, ordenado por secuencia.
func (r *TaskRepo) ListByWorkOrder(workOrderID string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE work_order_id = $1 ORDER BY sequence, created_at`
	rows, err := r.q.Query(context.Background(), query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(
			&t.ID, &t.WorkOrderID, &t.Sequence, &t.Title, &t.Description, &t.Status, &t.IsRii,
			&t.InspectedBy, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CountPendingRII cuenta las tareas RII de la orden cuyo estado no es COMPLETED.
func (r *TaskRepo) CountPendingRII(workOrderID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tasks WHERE work_order_id = $1 AND is_rii AND status <> $2`,
		workOrderID, entity.TaskStatusCompleted,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending rii: %w", err)
	}
	return count, nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
