package workorder_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/workorder"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

type fakePartUsageRepo struct {
	parts map[string]*entity.PartUsage
}

func newFakePartUsageRepo() *fakePartUsageRepo {
	return &fakePartUsageRepo{parts: make(map[string]*entity.PartUsage)}
}

func (r *fakePartUsageRepo) Create(p *entity.PartUsage) error {
	cp := *p
	r.parts[p.ID] = &cp
	return nil
}

func (r *fakePartUsageRepo) GetByID(id string) (*entity.PartUsage, error) {
	p, ok := r.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePartUsageRepo) ListByWorkOrder(workOrderID string) ([]*entity.PartUsage, error) {
	var out []*entity.PartUsage
	for _, p := range r.parts {
		if p.WorkOrderID != workOrderID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePartUsageRepo) Delete(id string) error {
	if _, ok := r.parts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.parts, id)
	return nil
}

func newPartFixture() (*fixture, *workorder.PartUsageUseCase, *fakePartUsageRepo) {
	f := newFixture()
	partRepo := newFakePartUsageRepo()
	uc := workorder.NewPartUsageUseCase(f.woRepo, partRepo, &fakeStockItemLookup{})
	return f, uc, partRepo
}

// fakeStockItemLookup resuelve solo item-1; lo demás no existe.
type fakeStockItemLookup struct{ fakeStockItemRepoStub }

func (r *fakeStockItemLookup) GetByID(id string) (*entity.StockItem, error) {
	if id == "item-1" {
		return &entity.StockItem{ID: id, PartNumber: "PN-4711"}, nil
	}
	return nil, nil
}

// fakeStockItemRepoStub cubre el resto del puerto con no-ops.
type fakeStockItemRepoStub struct{}

func (fakeStockItemRepoStub) Create(*entity.StockItem) error                 { return nil }
func (fakeStockItemRepoStub) GetByID(string) (*entity.StockItem, error)      { return nil, nil }
func (fakeStockItemRepoStub) GetForUpdate(string) (*entity.StockItem, error) { return nil, nil }
func (fakeStockItemRepoStub) Update(*entity.StockItem) error                 { return nil }
func (fakeStockItemRepoStub) List(string, int, int) ([]*entity.StockItem, error) {
	return nil, nil
}
func (fakeStockItemRepoStub) ListBelowReorderPoint(string) ([]*entity.StockItem, error) {
	return nil, nil
}
func (fakeStockItemRepoStub) SoftDelete(string, time.Time) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests de consumo de repuestos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddPart_RegistraConsumo(t *testing.T) {
	f, uc, _ := newPartFixture()
	wo := f.createOrder(t)

	out, err := uc.AddPart(wo.ID, dto.AddPartRequest{
		PartNumber:  "PN-4711",
		Quantity:    decimal.NewFromInt(2),
		StockItemID: strPtr("item-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "PN-4711", out.PartNumber)
	assert.Equal(t, wo.ID, out.WorkOrderID)
}

func TestAddPart_ItemInexistente_Falla(t *testing.T) {
	f, uc, _ := newPartFixture()
	wo := f.createOrder(t)

	_, err := uc.AddPart(wo.ID, dto.AddPartRequest{
		PartNumber:  "PN-999",
		Quantity:    decimal.NewFromInt(1),
		StockItemID: strPtr("item-fantasma"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un consumo vinculado a un ítem inexistente se rechaza")
}

func TestAddPart_CantidadNoPositiva_Falla(t *testing.T) {
	f, uc, _ := newPartFixture()
	wo := f.createOrder(t)

	_, err := uc.AddPart(wo.ID, dto.AddPartRequest{PartNumber: "PN-4711", Quantity: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddPart_OrdenLiberada_Falla(t *testing.T) {
	f, uc, _ := newPartFixture()
	wo := f.createOrder(t)
	f.release(t, wo.ID)

	_, err := uc.AddPart(wo.ID, dto.AddPartRequest{PartNumber: "PN-4711", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrWorkOrderReleased,
		"los consumos de una RELEASED son inmutables")
}

func TestDeletePart_OrdenLiberada_Falla(t *testing.T) {
	f, uc, _ := newPartFixture()
	wo := f.createOrder(t)
	part, err := uc.AddPart(wo.ID, dto.AddPartRequest{PartNumber: "PN-4711", Quantity: decimal.NewFromInt(1)})
	require.NoError(t, err)
	f.release(t, wo.ID)

	err = uc.DeletePart(part.ID)
	assert.ErrorIs(t, err, domain.ErrWorkOrderReleased)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del certificado PDF
// ──────────────────────────────────────────────────────────────────────────────

// fakeCertGenerator devuelve bytes fijos y captura los argumentos recibidos.
type fakeCertGenerator struct {
	gotTasks int
	gotParts int
}

func (g *fakeCertGenerator) Generate(_ context.Context, wo *entity.WorkOrder, aircraft *entity.Aircraft, tasks []*entity.Task, parts []*entity.PartUsage) ([]byte, error) {
	g.gotTasks = len(tasks)
	g.gotParts = len(parts)
	return []byte("%PDF-fake"), nil
}

func TestGenerateReleaseCertificate_SinLiberar_Falla(t *testing.T) {
	f, _, partRepo := newPartFixture()
	wo := f.createOrder(t)

	uc := workorder.NewPDFUseCase(f.woRepo, newFakeAircraftRepo("ac-1"), f.taskRepo, partRepo, &fakeCertGenerator{})
	_, err := uc.GenerateReleaseCertificate(context.Background(), wo.ID)
	assert.ErrorIs(t, err, domain.ErrWorkOrderNotReleased,
		"el certificado es el acta de la liberación, no un borrador")
}

func TestGenerateReleaseCertificate_OrdenLiberada(t *testing.T) {
	f, partUC, partRepo := newPartFixture()
	wo := f.createOrder(t)
	_, err := f.tasks.AddTask(wo.ID, dto.CreateTaskRequest{Sequence: 1, Title: "Cambio de filtro"})
	require.NoError(t, err)
	_, err = partUC.AddPart(wo.ID, dto.AddPartRequest{PartNumber: "PN-4711", Quantity: decimal.NewFromInt(1)})
	require.NoError(t, err)
	f.release(t, wo.ID)

	gen := &fakeCertGenerator{}
	uc := workorder.NewPDFUseCase(f.woRepo, newFakeAircraftRepo("ac-1"), f.taskRepo, partRepo, gen)
	pdf, err := uc.GenerateReleaseCertificate(context.Background(), wo.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, gen.gotTasks, "el checklist completo va al certificado")
	assert.Equal(t, 1, gen.gotParts, "los consumos van al certificado")
}
