package workorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la firma RII
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateTaskStatus_CompletedSobreRii_Falla(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)
	task, err := f.tasks.AddTask(wo.ID, dto.CreateTaskRequest{
		Sequence: 1, Title: "Torque de pernos críticos", IsRii: true,
	})
	require.NoError(t, err)

	_, err = f.tasks.UpdateTaskStatus(task.ID, "COMPLETED")
	assert.ErrorIs(t, err, domain.ErrRiiRequiresSignOff,
		"una RII solo se completa con firma de inspector")

	after, _ := f.taskRepo.GetByID(task.ID)
	assert.Equal(t, entity.TaskStatusPending, after.Status, "el estado no debe cambiar")
}

func TestUpdateTaskStatus_RiiEnProgreso_Permitido(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)
	task, err := f.tasks.AddTask(wo.ID, dto.CreateTaskRequest{
		Sequence: 1, Title: "Torque de pernos críticos", IsRii: true,
	})
	require.NoError(t, err)

	out, err := f.tasks.UpdateTaskStatus(task.ID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", out.Status, "solo COMPLETED está vedado para las RII")
}

func TestSignOffRii_CompletaYEstampaInspector(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)
	task, err := f.tasks.AddTask(wo.ID, dto.CreateTaskRequest{
		Sequence: 1, Title: "Torque de pernos críticos", IsRii: true,
	})
	require.NoError(t, err)

	out, err := f.tasks.SignOffRii(task.ID, "inspector-1")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", out.Status)
	require.NotNil(t, out.InspectedBy)
	assert.Equal(t, "inspector-1", *out.InspectedBy)
	assert.NotNil(t, out.CompletedAt)
}

func TestSignOffRii_SobreTareaOrdinaria_Falla(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)
	task, err := f.tasks.AddTask(wo.ID, dto.CreateTaskRequest{
		Sequence: 1, Title: "Lavado exterior",
	})
	require.NoError(t, err)

	_, err = f.tasks.SignOffRii(task.ID, "inspector-1")
	assert.ErrorIs(t, err, domain.ErrNotRii,
		"la firma solo aplica a tareas RII")
}

func TestSignOffRii_SinInspector_Falla(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)
	task, err := f.tasks.AddTask(wo.ID, dto.CreateTaskRequest{
		Sequence: 1, Title: "Torque de pernos críticos", IsRii: true,
	})
	require.NoError(t, err)

	_, err = f.tasks.SignOffRii(task.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del checklist sobre órdenes liberadas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddTask_OrdenLiberada_Falla(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)
	f.release(t, wo.ID)

	_, err := f.tasks.AddTask(wo.ID, dto.CreateTaskRequest{Sequence: 1, Title: "Extra"})
	assert.ErrorIs(t, err, domain.ErrWorkOrderReleased,
		"el checklist de una RELEASED es inmutable")
}

func TestDeleteTask_OrdenLiberada_Falla(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)
	task, err := f.tasks.AddTask(wo.ID, dto.CreateTaskRequest{Sequence: 1, Title: "Lavado exterior"})
	require.NoError(t, err)
	f.release(t, wo.ID)

	err = f.tasks.DeleteTask(task.ID)
	assert.ErrorIs(t, err, domain.ErrWorkOrderReleased)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de alta en lote
// ──────────────────────────────────────────────────────────────────────────────

func TestAddTasks_LoteVacio_Falla(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)

	_, err := f.tasks.AddTasks(wo.ID, dto.CreateTasksRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddTasks_PlantillaCompleta(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)

	out, err := f.tasks.AddTasks(wo.ID, dto.CreateTasksRequest{Tasks: []dto.CreateTaskRequest{
		{Sequence: 1, Title: "Drenaje de combustible"},
		{Sequence: 2, Title: "Cambio de filtro"},
		{Sequence: 3, Title: "Inspección de mando de vuelo", IsRii: true},
	}})
	require.NoError(t, err)
	require.Len(t, out, 3)

	list, err := f.tasks.ListByWorkOrder(wo.ID)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	pending, err := f.taskRepo.CountPendingRII(wo.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, pending, "solo la tarea RII cuenta como inspección pendiente")
}

func TestAddTasks_TituloVacioEnLote_Falla(t *testing.T) {
	f := newFixture()
	wo := f.createOrder(t)

	_, err := f.tasks.AddTasks(wo.ID, dto.CreateTasksRequest{Tasks: []dto.CreateTaskRequest{
		{Sequence: 1, Title: "Drenaje de combustible"},
		{Sequence: 2, Title: ""},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
