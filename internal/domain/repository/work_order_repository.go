package repository

import (
	"time"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

// WorkOrderRepository define el puerto de persistencia para órdenes de trabajo.
type WorkOrderRepository interface {
	Create(wo *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	GetForUpdate(id string) (*entity.WorkOrder, error)
	Update(wo *entity.WorkOrder) error
	List(status entity.WorkOrderStatus, limit, offset int) ([]*entity.WorkOrder, error)
	ListByAircraft(aircraftID string, limit, offset int) ([]*entity.WorkOrder, error)
	SoftDelete(id string, at time.Time) error
}
