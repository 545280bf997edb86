package workorder

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// UseCase es la máquina de estados de órdenes de trabajo:
// DRAFT → OPEN → IN_PROGRESS → COMPLETED → RELEASED, con CANCELLED como
// terminal alterno (reabrible solo a DRAFT). Completar exige el checklist RII
// firmado; liberar es la frontera de autoridad del inspector y deja la orden
// inmutable.
type UseCase struct {
	txRunner     TxRunner
	woRepo       repository.WorkOrderRepository
	taskRepo     repository.TaskRepository
	aircraftRepo repository.AircraftRepository
	counterRepo  repository.CounterRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	woRepo repository.WorkOrderRepository,
	taskRepo repository.TaskRepository,
	aircraftRepo repository.AircraftRepository,
	counterRepo repository.CounterRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		woRepo:       woRepo,
		taskRepo:     taskRepo,
		aircraftRepo: aircraftRepo,
		counterRepo:  counterRepo,
	}
}

// Create crea una orden con consecutivo anual WO-<año>-<seq>.
// Nace OPEN si viene asignada; DRAFT si no.
func (uc *UseCase) Create(in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if in.AircraftID == "" {
		return nil, domain.ErrInvalidInput
	}
	aircraft, err := uc.aircraftRepo.GetByID(in.AircraftID)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	number, err := uc.nextNumber(now)
	if err != nil {
		return nil, err
	}
	status := entity.WorkOrderStatusDraft
	var assignedAt *time.Time
	if in.AssignedTo != nil && *in.AssignedTo != "" {
		status = entity.WorkOrderStatusOpen
		assignedAt = &now
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	wo := &entity.WorkOrder{
		ID:             uuid.New().String(),
		OrderNumber:    number,
		AircraftID:     in.AircraftID,
		Type:           in.Type,
		Status:         status,
		Priority:       priority,
		Description:    in.Description,
		AssignedTo:     in.AssignedTo,
		AssignedAt:     assignedAt,
		ScheduledStart: in.ScheduledStart,
		ScheduledEnd:   in.ScheduledEnd,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.woRepo.Create(wo); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo), nil
}

// Update modifica campos editables. Una orden RELEASED es inmutable.
func (uc *UseCase) Update(id string, in dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	wo, err := uc.woRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	if wo.Released() {
		return nil, domain.ErrWorkOrderReleased
	}
	if in.Type != nil {
		wo.Type = *in.Type
	}
	if in.Priority != nil {
		wo.Priority = *in.Priority
	}
	if in.Description != nil {
		wo.Description = *in.Description
	}
	if in.ScheduledStart != nil {
		wo.ScheduledStart = in.ScheduledStart
	}
	if in.ScheduledEnd != nil {
		wo.ScheduledEnd = in.ScheduledEnd
	}
	wo.UpdatedAt = time.Now()
	if err := uc.woRepo.Update(wo); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo), nil
}

// UpdateStatus cambia el estado explícitamente contra la tabla de transiciones.
// RELEASED rechaza todo; CANCELLED solo admite reapertura a DRAFT. COMPLETED y
// RELEASED no son alcanzables por esta vía: solo Complete/Release llegan ahí.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, newStatus string) (*dto.WorkOrderResponse, error) {
	target := entity.WorkOrderStatus(newStatus)
	if !target.Valid() {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.WorkOrderResponse
	err := uc.txRunner.RunWorkOrder(ctx, func(woRepo repository.WorkOrderRepository, _ repository.TaskRepository) error {
		wo, err := woRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if wo == nil {
			return domain.ErrNotFound
		}
		if wo.Released() {
			return domain.ErrWorkOrderReleased
		}
		if wo.Status == entity.WorkOrderStatusCancelled && target != entity.WorkOrderStatusDraft {
			return domain.ErrCancelledReopen
		}
		if !wo.Status.CanTransitionTo(target) {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		wo.Status = target
		if target == entity.WorkOrderStatusInProgress && wo.ActualStart == nil {
			wo.ActualStart = &now
		}
		wo.UpdatedAt = now
		if err := woRepo.Update(wo); err != nil {
			return err
		}
		out = toWorkOrderResponse(wo)
		return nil
	})
	return out, err
}

// Assign asigna la orden a un técnico. Una orden DRAFT asignada pasa a OPEN,
// igual que en la creación.
func (uc *UseCase) Assign(id, userID string) (*dto.WorkOrderResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	wo, err := uc.woRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	if wo.Released() {
		return nil, domain.ErrWorkOrderReleased
	}
	now := time.Now()
	wo.AssignedTo = &userID
	wo.AssignedAt = &now
	if wo.Status == entity.WorkOrderStatusDraft {
		wo.Status = entity.WorkOrderStatusOpen
	}
	wo.UpdatedAt = now
	if err := uc.woRepo.Update(wo); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo), nil
}

// Start pone la orden IN_PROGRESS y estampa el inicio real.
func (uc *UseCase) Start(id string) (*dto.WorkOrderResponse, error) {
	wo, err := uc.woRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	if wo.Released() {
		return nil, domain.ErrWorkOrderReleased
	}
	now := time.Now()
	wo.Status = entity.WorkOrderStatusInProgress
	if wo.ActualStart == nil {
		wo.ActualStart = &now
	}
	wo.UpdatedAt = now
	if err := uc.woRepo.Update(wo); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo), nil
}

// Complete cierra el trabajo. Falla mientras exista alguna tarea RII sin firma
// de inspector; la verificación y la escritura corren en la misma transacción.
func (uc *UseCase) Complete(ctx context.Context, id, userID, notes string) (*dto.WorkOrderResponse, error) {
	var out *dto.WorkOrderResponse
	err := uc.txRunner.RunWorkOrder(ctx, func(woRepo repository.WorkOrderRepository, taskRepo repository.TaskRepository) error {
		wo, err := woRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if wo == nil {
			return domain.ErrNotFound
		}
		if wo.Released() {
			return domain.ErrWorkOrderReleased
		}
		pending, err := taskRepo.CountPendingRII(id)
		if err != nil {
			return err
		}
		if pending > 0 {
			return domain.ErrPendingInspection
		}
		now := time.Now()
		wo.Status = entity.WorkOrderStatusCompleted
		wo.CompletedBy = &userID
		wo.CompletedAt = &now
		wo.CompletionNotes = notes
		if wo.ActualEnd == nil {
			wo.ActualEnd = &now
		}
		wo.UpdatedAt = now
		if err := woRepo.Update(wo); err != nil {
			return err
		}
		out = toWorkOrderResponse(wo)
		return nil
	})
	return out, err
}

// Release libera la orden (certificación de aeronavegabilidad). Solo desde
// COMPLETED; la autorización de rol inspector la aplica el middleware HTTP.
func (uc *UseCase) Release(ctx context.Context, id, userID string) (*dto.WorkOrderResponse, error) {
	var out *dto.WorkOrderResponse
	err := uc.txRunner.RunWorkOrder(ctx, func(woRepo repository.WorkOrderRepository, _ repository.TaskRepository) error {
		wo, err := woRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if wo == nil {
			return domain.ErrNotFound
		}
		if wo.Status != entity.WorkOrderStatusCompleted {
			return domain.ErrWorkOrderNotCompleted
		}
		now := time.Now()
		wo.Status = entity.WorkOrderStatusReleased
		wo.ReleasedBy = &userID
		wo.ReleasedAt = &now
		wo.UpdatedAt = now
		if err := woRepo.Update(wo); err != nil {
			return err
		}
		out = toWorkOrderResponse(wo)
		return nil
	})
	return out, err
}

// Cancel cancela la orden; una orden RELEASED no se cancela.
func (uc *UseCase) Cancel(id string) (*dto.WorkOrderResponse, error) {
	wo, err := uc.woRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	if wo.Released() {
		return nil, domain.ErrWorkOrderReleased
	}
	wo.Status = entity.WorkOrderStatusCancelled
	wo.UpdatedAt = time.Now()
	if err := uc.woRepo.Update(wo); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo), nil
}

// Delete baja lógica. Rechazada mientras la orden esté OPEN o IN_PROGRESS.
func (uc *UseCase) Delete(id string) error {
	wo, err := uc.woRepo.GetByID(id)
	if err != nil {
		return err
	}
	if wo == nil {
		return domain.ErrNotFound
	}
	if wo.Active() {
		return domain.ErrWorkOrderActive
	}
	return uc.woRepo.SoftDelete(id, time.Now())
}

// GetByID obtiene la orden con su checklist.
func (uc *UseCase) GetByID(id string) (*dto.WorkOrderResponse, error) {
	wo, err := uc.woRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkOrderResponse(wo), nil
}

// List lista órdenes con filtro opcional por estado.
func (uc *UseCase) List(status string, limit, offset int) (*dto.WorkOrderListResponse, error) {
	list, err := uc.woRepo.List(entity.WorkOrderStatus(status), limit, offset)
	if err != nil {
		return nil, err
	}
	return toWorkOrderListResponse(list, limit, offset), nil
}

// ListByAircraft lista el historial de órdenes de una aeronave.
func (uc *UseCase) ListByAircraft(aircraftID string, limit, offset int) (*dto.WorkOrderListResponse, error) {
	list, err := uc.woRepo.ListByAircraft(aircraftID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toWorkOrderListResponse(list, limit, offset), nil
}

// nextNumber asigna el consecutivo WO-<año>-<seq>, anual.
func (uc *UseCase) nextNumber(now time.Time) (string, error) {
	year := strconv.Itoa(now.Year())
	seq, err := uc.counterRepo.Next("work_order", year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("WO-%s-%04d", year, seq), nil
}

func toWorkOrderListResponse(list []*entity.WorkOrder, limit, offset int) *dto.WorkOrderListResponse {
	items := make([]dto.WorkOrderResponse, 0, len(list))
	for _, wo := range list {
		items = append(items, *toWorkOrderResponse(wo))
	}
	return &dto.WorkOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toWorkOrderResponse(w *entity.WorkOrder) *dto.WorkOrderResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkOrderResponse{
		ID:              w.ID,
		OrderNumber:     w.OrderNumber,
		AircraftID:      w.AircraftID,
		Type:            w.Type,
		Status:          string(w.Status),
		Priority:        w.Priority,
		Description:     w.Description,
		AssignedTo:      w.AssignedTo,
		AssignedAt:      w.AssignedAt,
		ScheduledStart:  w.ScheduledStart,
		ScheduledEnd:    w.ScheduledEnd,
		ActualStart:     w.ActualStart,
		ActualEnd:       w.ActualEnd,
		CompletedBy:     w.CompletedBy,
		CompletedAt:     w.CompletedAt,
		ReleasedBy:      w.ReleasedBy,
		ReleasedAt:      w.ReleasedAt,
		CompletionNotes: w.CompletionNotes,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}
