package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para tareas del checklist.
type TaskRepository interface {
	Create(task *entity.Task) error
	CreateBatch(tasks []*entity.Task) error
	GetByID(id string) (*entity.Task, error)
	Update(task *entity.Task) error
	ListByWorkOrder(workOrderID string) ([]*entity.Task, error)
	// CountPendingRII cuenta las tareas RII de la orden cuyo estado no es COMPLETED.
	CountPendingRII(workOrderID string) (int, error)
	Delete(id string) error
}
