package workorder

import (
	"context"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con repositorios
// de órdenes y tareas atados a esa tx. Completar y liberar leen el checklist y
// escriben la orden: corren aquí adentro con bloqueo de fila para que una firma
// RII concurrente no deje pasar una orden con inspecciones pendientes.
type TxRunner interface {
	RunWorkOrder(ctx context.Context, fn func(
		woRepo repository.WorkOrderRepository,
		taskRepo repository.TaskRepository,
	) error) error
}

// ReleaseCertificateGenerator genera el certificado PDF de liberación
// (certificate of release to service) de una orden RELEASED.
type ReleaseCertificateGenerator interface {
	Generate(ctx context.Context, wo *entity.WorkOrder, aircraft *entity.Aircraft, tasks []*entity.Task, parts []*entity.PartUsage) ([]byte, error)
}
