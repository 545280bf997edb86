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

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, movement_number, type, status, stock_item_id, from_warehouse_id, to_warehouse_id,
	quantity, unit_cost, total_cost, reference, notes, requested_by, approved_by, approved_at,
	completed_at, created_at, updated_at`

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, movement_number, type, status, stock_item_id, from_warehouse_id, to_warehouse_id,
			quantity, unit_cost, total_cost, reference, notes, requested_by, approved_by, approved_at,
			completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.MovementNumber, movement.Type, movement.Status, movement.StockItemID,
		movement.FromWarehouseID, movement.ToWarehouseID, movement.Quantity, movement.UnitCost, movement.TotalCost,
		movement.Reference, movement.Notes, movement.RequestedBy, movement.ApprovedBy, movement.ApprovedAt,
		movement.CompletedAt, movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get movement")
}

// GetForUpdate obtiene un movimiento y bloquea la fila (SELECT FOR UPDATE).
func (r *MovementRepo) GetForUpdate(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get movement for update")
}

// Update persiste estado, sellos de aprobación/completado y campos editables.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movements
		SET status = $2, stock_item_id = $3, from_warehouse_id = $4, to_warehouse_id = $5, quantity = $6,
			unit_cost = $7, total_cost = $8, reference = $9, notes = $10, approved_by = $11, approved_at = $12,
			completed_at = $13, updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Status, movement.StockItemID, movement.FromWarehouseID, movement.ToWarehouseID,
		movement.Quantity, movement.UnitCost, movement.TotalCost, movement.Reference, movement.Notes,
		movement.ApprovedBy, movement.ApprovedAt, movement.CompletedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista movimientos con filtros opcionales por estado y tipo, paginados.
func (r *MovementRepo) List(status entity.MovementStatus, movType entity.MovementType, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, string(status), string(movType), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.MovementNumber, &m.Type, &m.Status, &m.StockItemID, &m.FromWarehouseID, &m.ToWarehouseID,
			&m.Quantity, &m.UnitCost, &m.TotalCost, &m.Reference, &m.Notes, &m.RequestedBy,
			&m.ApprovedBy, &m.ApprovedAt, &m.CompletedAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un movimiento por ID (el caso de uso solo lo permite en PENDING o CANCELLED).
func (r *MovementRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MovementRepo) scanOne(row pgx.Row, op string) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.MovementNumber, &m.Type, &m.Status, &m.StockItemID, &m.FromWarehouseID, &m.ToWarehouseID,
		&m.Quantity, &m.UnitCost, &m.TotalCost, &m.Reference, &m.Notes, &m.RequestedBy,
		&m.ApprovedBy, &m.ApprovedAt, &m.CompletedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}
