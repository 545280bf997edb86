package workorder

import (
	"context"

	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// PDFUseCase genera el certificado de liberación (certificate of release to
// service) de una orden RELEASED: orden, aeronave, checklist firmado y
// repuestos consumidos.
type PDFUseCase struct {
	woRepo       repository.WorkOrderRepository
	aircraftRepo repository.AircraftRepository
	taskRepo     repository.TaskRepository
	partRepo     repository.PartUsageRepository
	generator    ReleaseCertificateGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	woRepo repository.WorkOrderRepository,
	aircraftRepo repository.AircraftRepository,
	taskRepo repository.TaskRepository,
	partRepo repository.PartUsageRepository,
	generator ReleaseCertificateGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		woRepo:       woRepo,
		aircraftRepo: aircraftRepo,
		taskRepo:     taskRepo,
		partRepo:     partRepo,
		generator:    generator,
	}
}

// GenerateReleaseCertificate genera el PDF. Solo órdenes RELEASED: el
// certificado es el acta de la liberación, no un borrador.
func (uc *PDFUseCase) GenerateReleaseCertificate(ctx context.Context, workOrderID string) ([]byte, error) {
	wo, err := uc.woRepo.GetByID(workOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	if !wo.Released() {
		return nil, domain.ErrWorkOrderNotReleased
	}
	aircraft, err := uc.aircraftRepo.GetByID(wo.AircraftID)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, domain.ErrNotFound
	}
	tasks, err := uc.taskRepo.ListByWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}
	parts, err := uc.partRepo.ListByWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(ctx, wo, aircraft, tasks, parts)
}
