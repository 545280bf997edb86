package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// PartUsageRepository define el puerto de persistencia para consumos de repuestos.
type PartUsageRepository interface {
	Create(part *entity.PartUsage) error
	GetByID(id string) (*entity.PartUsage, error)
	ListByWorkOrder(workOrderID string) ([]*entity.PartUsage, error)
	Delete(id string) error
}
