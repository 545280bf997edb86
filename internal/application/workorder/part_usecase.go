package workorder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// PartUsageUseCase administra los registros de consumo de repuestos de una
// orden. Son narrativa de consumo: el ledger lo mueven los movimientos
// COMPLETED, no estos registros.
type PartUsageUseCase struct {
	woRepo   repository.WorkOrderRepository
	partRepo repository.PartUsageRepository
	itemRepo repository.StockItemRepository
}

// NewPartUsageUseCase construye el caso de uso.
func NewPartUsageUseCase(
	woRepo repository.WorkOrderRepository,
	partRepo repository.PartUsageRepository,
	itemRepo repository.StockItemRepository,
) *PartUsageUseCase {
	return &PartUsageUseCase{woRepo: woRepo, partRepo: partRepo, itemRepo: itemRepo}
}

// AddPart registra un consumo mientras la orden no esté liberada.
func (uc *PartUsageUseCase) AddPart(workOrderID string, in dto.AddPartRequest) (*dto.PartUsageResponse, error) {
	if in.PartNumber == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkParent(workOrderID); err != nil {
		return nil, err
	}
	if in.StockItemID != nil && *in.StockItemID != "" {
		item, err := uc.itemRepo.GetByID(*in.StockItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
	}
	part := &entity.PartUsage{
		ID:          uuid.New().String(),
		WorkOrderID: workOrderID,
		PartNumber:  in.PartNumber,
		Quantity:    in.Quantity,
		StockItemID: in.StockItemID,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.partRepo.Create(part); err != nil {
		return nil, err
	}
	return toPartUsageResponse(part), nil
}

// ListParts devuelve los consumos de la orden.
func (uc *PartUsageUseCase) ListParts(workOrderID string) ([]dto.PartUsageResponse, error) {
	wo, err := uc.woRepo.GetByID(workOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	parts, err := uc.partRepo.ListByWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartUsageResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, *toPartUsageResponse(p))
	}
	return out, nil
}

// DeletePart elimina un consumo mientras la orden no esté liberada.
func (uc *PartUsageUseCase) DeletePart(partID string) error {
	part, err := uc.partRepo.GetByID(partID)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	if err := uc.checkParent(part.WorkOrderID); err != nil {
		return err
	}
	return uc.partRepo.Delete(partID)
}

func (uc *PartUsageUseCase) checkParent(workOrderID string) error {
	wo, err := uc.woRepo.GetByID(workOrderID)
	if err != nil {
		return err
	}
	if wo == nil {
		return domain.ErrNotFound
	}
	if wo.Released() {
		return domain.ErrWorkOrderReleased
	}
	return nil
}

func toPartUsageResponse(p *entity.PartUsage) *dto.PartUsageResponse {
	if p == nil {
		return nil
	}
	return &dto.PartUsageResponse{
		ID:          p.ID,
		WorkOrderID: p.WorkOrderID,
		PartNumber:  p.PartNumber,
		Quantity:    p.Quantity,
		StockItemID: p.StockItemID,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}
