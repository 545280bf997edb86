package workorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// TaskUseCase administra el checklist de una orden de trabajo. Las tareas RII
// solo se completan vía SignOffRii; el update genérico de estado las rechaza.
type TaskUseCase struct {
	woRepo   repository.WorkOrderRepository
	taskRepo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(woRepo repository.WorkOrderRepository, taskRepo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{woRepo: woRepo, taskRepo: taskRepo}
}

// AddTask agrega una tarea al checklist de una orden existente y no liberada.
func (uc *TaskUseCase) AddTask(workOrderID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkParent(workOrderID); err != nil {
		return nil, err
	}
	task := newTask(workOrderID, in)
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// AddTasks agrega un lote de tareas (plantilla de checklist) en una pasada.
func (uc *TaskUseCase) AddTasks(workOrderID string, in dto.CreateTasksRequest) ([]dto.TaskResponse, error) {
	if len(in.Tasks) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkParent(workOrderID); err != nil {
		return nil, err
	}
	tasks := make([]*entity.Task, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		if t.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		tasks = append(tasks, newTask(workOrderID, t))
	}
	if err := uc.taskRepo.CreateBatch(tasks); err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

// UpdateTask edita título/secuencia/descripción de una tarea.
func (uc *TaskUseCase) UpdateTask(taskID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.getTask(taskID)
	if err != nil {
		return nil, err
	}
	if in.Sequence != nil {
		task.Sequence = *in.Sequence
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// UpdateTaskStatus cambia el estado de una tarea ordinaria. Marcar COMPLETED
// una tarea RII por esta vía se rechaza siempre: la única ruta es SignOffRii.
func (uc *TaskUseCase) UpdateTaskStatus(taskID, status string) (*dto.TaskResponse, error) {
	target := entity.TaskStatus(status)
	if !target.Valid() {
		return nil, domain.ErrInvalidInput
	}
	task, err := uc.getTask(taskID)
	if err != nil {
		return nil, err
	}
	if task.IsRii && target == entity.TaskStatusCompleted {
		return nil, domain.ErrRiiRequiresSignOff
	}
	now := time.Now()
	task.Status = target
	if target == entity.TaskStatusCompleted {
		task.CompletedAt = &now
	}
	task.UpdatedAt = now
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// SignOffRii firma de inspector sobre una tarea RII: la única ruta que la
// completa. El rol inspector lo exige el middleware HTTP.
func (uc *TaskUseCase) SignOffRii(taskID, inspectorID string) (*dto.TaskResponse, error) {
	if inspectorID == "" {
		return nil, domain.ErrInvalidInput
	}
	task, err := uc.getTask(taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsRii {
		return nil, domain.ErrNotRii
	}
	now := time.Now()
	task.Status = entity.TaskStatusCompleted
	task.InspectedBy = &inspectorID
	task.CompletedAt = &now
	task.UpdatedAt = now
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// DeleteTask elimina una tarea; solo la inmutabilidad de una orden liberada lo impide.
func (uc *TaskUseCase) DeleteTask(taskID string) error {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	if err := uc.checkParent(task.WorkOrderID); err != nil {
		return err
	}
	return uc.taskRepo.Delete(taskID)
}

// ListByWorkOrder devuelve el checklist de la orden.
func (uc *TaskUseCase) ListByWorkOrder(workOrderID string) ([]dto.TaskResponse, error) {
	if err := uc.exists(workOrderID); err != nil {
		return nil, err
	}
	tasks, err := uc.taskRepo.ListByWorkOrder(workOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

// getTask carga la tarea y valida que su orden no esté liberada.
func (uc *TaskUseCase) getTask(taskID string) (*entity.Task, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkParent(task.WorkOrderID); err != nil {
		return nil, err
	}
	return task, nil
}

// checkParent exige orden existente y no liberada.
func (uc *TaskUseCase) checkParent(workOrderID string) error {
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

// exists exige orden existente (sin restricción de estado, para lecturas).
func (uc *TaskUseCase) exists(workOrderID string) error {
	wo, err := uc.woRepo.GetByID(workOrderID)
	if err != nil {
		return err
	}
	if wo == nil {
		return domain.ErrNotFound
	}
	return nil
}

func newTask(workOrderID string, in dto.CreateTaskRequest) *entity.Task {
	now := time.Now()
	return &entity.Task{
		ID:          uuid.New().String(),
		WorkOrderID: workOrderID,
		Sequence:    in.Sequence,
		Title:       in.Title,
		Description: in.Description,
		Status:      entity.TaskStatusPending,
		IsRii:       in.IsRii,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		WorkOrderID: t.WorkOrderID,
		Sequence:    t.Sequence,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		IsRii:       t.IsRii,
		InspectedBy: t.InspectedBy,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
