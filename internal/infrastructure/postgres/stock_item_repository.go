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

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `id, part_number, warehouse_id, quantity, reserved_quantity, available_quantity,
	min_stock, reorder_point, unit_cost, total_value, expiry_date, created_at, updated_at, deleted_at`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create persiste un nuevo ítem de stock.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, part_number, warehouse_id, quantity, reserved_quantity, available_quantity,
			min_stock, reorder_point, unit_cost, total_value, expiry_date, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PartNumber, item.WarehouseID, item.Quantity, item.ReservedQuantity, item.AvailableQuantity,
		item.MinStock, item.ReorderPoint, item.UnitCost, item.TotalValue, item.ExpiryDate,
		item.CreatedAt, item.UpdatedAt, item.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem activo por ID (los soft-deleted no existen para los lectores).
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item")
}

// GetForUpdate obtiene un ítem activo y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item for update")
}

// Update persiste cantidades, reservas, derivados y parámetros de reorden.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET quantity = $2, reserved_quantity = $3, available_quantity = $4, min_stock = $5,
			reorder_point = $6, unit_cost = $7, total_value = $8, expiry_date = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.ReservedQuantity, item.AvailableQuantity, item.MinStock,
		item.ReorderPoint, item.UnitCost, item.TotalValue, item.ExpiryDate, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ítems activos, opcionalmente filtrados por bodega, con paginación.
func (r *StockItemRepo) List(warehouseID string, limit, offset int) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + `
		FROM stock_items
		WHERE deleted_at IS NULL AND ($1 = '' OR warehouse_id = $1)
		ORDER BY part_number LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListBelowReorderPoint lista ítems activos cuya cantidad disponible está en o
// por debajo del punto de reorden, opcionalmente filtrados por bodega.
func (r *StockItemRepo) ListBelowReorderPoint(warehouseID string) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + `
		FROM stock_items
		WHERE deleted_at IS NULL AND available_quantity <= reorder_point
			AND ($1 = '' OR warehouse_id = $1)
		ORDER BY part_number`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list low stock items: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// SoftDelete marca el ítem como eliminado conservando el histórico.
func (r *StockItemRepo) SoftDelete(id string, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockItemRepo) scanOne(row pgx.Row, op string) (*entity.StockItem, error) {
	var s entity.StockItem
	err := row.Scan(
		&s.ID, &s.PartNumber, &s.WarehouseID, &s.Quantity, &s.ReservedQuantity, &s.AvailableQuantity,
		&s.MinStock, &s.ReorderPoint, &s.UnitCost, &s.TotalValue, &s.ExpiryDate,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *StockItemRepo) scanList(rows pgx.Rows) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(
			&s.ID, &s.PartNumber, &s.WarehouseID, &s.Quantity, &s.ReservedQuantity, &s.AvailableQuantity,
			&s.MinStock, &s.ReorderPoint, &s.UnitCost, &s.TotalValue, &s.ExpiryDate,
			&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
