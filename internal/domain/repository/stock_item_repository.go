package repository

import (
	"time"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para existencias.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro
// de una transacción: toda secuencia leer-modificar-escribir debe pasar por ahí.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetForUpdate(id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	List(warehouseID string, limit, offset int) ([]*entity.StockItem, error)
	ListBelowReorderPoint(warehouseID string) ([]*entity.StockItem, error)
	SoftDelete(id string, at time.Time) error
}
