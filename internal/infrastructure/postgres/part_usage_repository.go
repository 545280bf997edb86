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

var _ repository.PartUsageRepository = (*PartUsageRepo)(nil)

// PartUsageRepo implementación de PartUsageRepository sobre PostgreSQL (usable con pool o tx).
type PartUsageRepo struct {
	q Querier
}

// NewPartUsageRepository construye el adaptador de consumos de repuestos. Pasar pool o tx (Querier).
func NewPartUsageRepository(q Querier) *PartUsageRepo {
	return &PartUsageRepo{q: q}
}

// Create persiste un consumo de repuesto.
func (r *PartUsageRepo) Create(part *entity.PartUsage) error {
	query := `
		INSERT INTO part_usages (id, work_order_id, part_number, quantity, stock_item_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.WorkOrderID, part.PartNumber, part.Quantity, part.StockItemID, part.Notes, part.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert part usage: %w", err)
	}
	return nil
}

// GetByID obtiene un consumo por ID.
func (r *PartUsageRepo) GetByID(id string) (*entity.PartUsage, error) {
	query := `
		SELECT id, work_order_id, part_number, quantity, stock_item_id, notes, created_at
		FROM part_usages WHERE id = $1`
	var p entity.PartUsage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.WorkOrderID, &p.PartNumber, &p.Quantity, &p.StockItemID, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part usage: %w", err)
	}
	return &p, nil
}

// ListByWorkOrder lista los consumos de una orden.
func (r *PartUsageRepo) ListByWorkOrder(workOrderID string) ([]*entity.PartUsage, error) {
	query := `
		SELECT id, work_order_id, part_number, quantity, stock_item_id, notes, created_at
		FROM part_usages WHERE work_order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("list part usages: %w", err)
	}
	defer rows.Close()
	var list []*entity.PartUsage
	for rows.Next() {
		var p entity.PartUsage
		if err := rows.Scan(&p.ID, &p.WorkOrderID, &p.PartNumber, &p.Quantity, &p.StockItemID, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan part usage: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un consumo por ID.
func (r *PartUsageRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM part_usages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part usage: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
