package movement_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/movement"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements map[string]*entity.Movement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{movements: make(map[string]*entity.Movement)}
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movements[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) GetForUpdate(id string) (*entity.Movement, error) {
	return r.GetByID(id)
}

func (r *fakeMovementRepo) Update(m *entity.Movement) error {
	if _, ok := r.movements[m.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	r.movements[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) List(status entity.MovementStatus, movType entity.MovementType, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if status != "" && m.Status != status {
			continue
		}
		if movType != "" && m.Type != movType {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	if _, ok := r.movements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.movements, id)
	return nil
}

type fakeStockItemRepo struct {
	items map[string]*entity.StockItem
}

func newFakeStockItemRepo() *fakeStockItemRepo {
	return &fakeStockItemRepo{items: make(map[string]*entity.StockItem)}
}

func (r *fakeStockItemRepo) Create(item *entity.StockItem) error { r.items[item.ID] = item; return nil }
func (r *fakeStockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	item, ok := r.items[id]
	if !ok || item.DeletedAt != nil {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}
func (r *fakeStockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}
func (r *fakeStockItemRepo) Update(item *entity.StockItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}
func (r *fakeStockItemRepo) List(string, int, int) ([]*entity.StockItem, error) { return nil, nil }
func (r *fakeStockItemRepo) ListBelowReorderPoint(string) ([]*entity.StockItem, error) {
	return nil, nil
}
func (r *fakeStockItemRepo) SoftDelete(string, time.Time) error { return nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, id := range ids {
		r.warehouses[id] = &entity.Warehouse{ID: id, Code: id}
	}
	return r
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) Update(*entity.Warehouse) error             { return nil }
func (r *fakeWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) Delete(string) error                        { return nil }

// fakeCounterRepo consecutivos in-memory por (scope, period).
type fakeCounterRepo struct {
	counters map[string]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[string]int64)}
}

func (r *fakeCounterRepo) Next(scope, period string) (int64, error) {
	key := scope + "/" + period
	r.counters[key]++
	return r.counters[key], nil
}

type fakeTxRunner struct {
	movRepo  repository.MovementRepository
	itemRepo repository.StockItemRepository
}

func (r *fakeTxRunner) RunMovement(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	itemRepo repository.StockItemRepository,
) error) error {
	return fn(r.movRepo, r.itemRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func strPtr(s string) *string { return &s }

type fixture struct {
	uc       *movement.UseCase
	movRepo  *fakeMovementRepo
	itemRepo *fakeStockItemRepo
}

func newFixture() *fixture {
	movRepo := newFakeMovementRepo()
	itemRepo := newFakeStockItemRepo()
	item := &entity.StockItem{
		ID:               "item-1",
		PartNumber:       "PN-4711",
		WarehouseID:      "wh-1",
		Quantity:         dec(100),
		ReservedQuantity: dec(10),
	}
	item.RecalcDerived()
	itemRepo.items[item.ID] = item

	uc := movement.NewUseCase(
		&fakeTxRunner{movRepo: movRepo, itemRepo: itemRepo},
		movRepo,
		itemRepo,
		newFakeWarehouseRepo("wh-1", "wh-2"),
		newFakeCounterRepo(),
	)
	return &fixture{uc: uc, movRepo: movRepo, itemRepo: itemRepo}
}

// createMovement crea un movimiento válido del tipo dado sobre item-1.
func (f *fixture) createMovement(t *testing.T, movType string, qty decimal.Decimal) *dto.MovementResponse {
	t.Helper()
	in := dto.CreateMovementRequest{
		Type:        movType,
		StockItemID: strPtr("item-1"),
		Quantity:    qty,
	}
	switch movType {
	case "RECEIPT", "RETURN":
		in.ToWarehouseID = strPtr("wh-1")
	case "TRANSFER":
		in.FromWarehouseID = strPtr("wh-1")
		in.ToWarehouseID = strPtr("wh-2")
	default:
		in.FromWarehouseID = strPtr("wh-1")
	}
	mov, err := f.uc.Create(in, "user-1")
	require.NoError(t, err)
	return mov
}

// approveAndComplete lleva el movimiento hasta COMPLETED.
func (f *fixture) approve(t *testing.T, id string) {
	t.Helper()
	_, err := f.uc.Approve(context.Background(), id, "supervisor-1")
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_IssueSinBodegaOrigen_Falla(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(dto.CreateMovementRequest{
		Type:        "ISSUE",
		StockItemID: strPtr("item-1"),
		Quantity:    dec(5),
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidWarehousePair,
		"ISSUE sin bodega origen debe rechazarse")
}

func TestCreate_TransferMismaBodega_Falla(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(dto.CreateMovementRequest{
		Type:            "TRANSFER",
		FromWarehouseID: strPtr("wh-1"),
		ToWarehouseID:   strPtr("wh-1"),
		Quantity:        dec(5),
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidWarehousePair,
		"TRANSFER exige bodegas distintas")
}

func TestCreate_CantidadNegativaEnReceipt_Falla(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(dto.CreateMovementRequest{
		Type:          "RECEIPT",
		ToWarehouseID: strPtr("wh-1"),
		Quantity:      dec(-5),
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"solo ADJUSTMENT/COUNT admiten delta con signo")
}

func TestCreate_AdjustmentNegativo_Permitido(t *testing.T) {
	f := newFixture()

	mov, err := f.uc.Create(dto.CreateMovementRequest{
		Type:            "ADJUSTMENT",
		StockItemID:     strPtr("item-1"),
		FromWarehouseID: strPtr("wh-1"),
		Quantity:        dec(-3),
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "PENDING", mov.Status)
}

func TestCreate_NumeracionPorTipoYDia(t *testing.T) {
	f := newFixture()
	today := time.Now().Format("20060102")

	m1 := f.createMovement(t, "RECEIPT", dec(5))
	m2 := f.createMovement(t, "RECEIPT", dec(5))
	m3 := f.createMovement(t, "ISSUE", dec(1))

	assert.Equal(t, fmt.Sprintf("REC-%s-0001", today), m1.MovementNumber)
	assert.Equal(t, fmt.Sprintf("REC-%s-0002", today), m2.MovementNumber,
		"el consecutivo de RECEIPT avanza")
	assert.Equal(t, fmt.Sprintf("ISS-%s-0001", today), m3.MovementNumber,
		"cada tipo lleva su propio consecutivo")
}

func TestCreate_CalculaCostoTotal(t *testing.T) {
	f := newFixture()
	cost := dec(7)

	mov, err := f.uc.Create(dto.CreateMovementRequest{
		Type:          "RECEIPT",
		StockItemID:   strPtr("item-1"),
		ToWarehouseID: strPtr("wh-1"),
		Quantity:      dec(6),
		UnitCost:      &cost,
	}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, mov.TotalCost)
	assert.True(t, mov.TotalCost.Equal(dec(42)), "costo total = costo unitario * cantidad")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestComplete_SinAprobar_Falla(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "RECEIPT", dec(5))

	_, err := f.uc.Complete(context.Background(), mov.ID)
	assert.ErrorIs(t, err, domain.ErrMovementNotApproved,
		"completar un PENDING debe rechazarse")
}

func TestComplete_Cancelado_Falla(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "RECEIPT", dec(5))
	_, err := f.uc.Cancel(context.Background(), mov.ID)
	require.NoError(t, err)

	_, err = f.uc.Complete(context.Background(), mov.ID)
	assert.ErrorIs(t, err, domain.ErrMovementNotApproved)
}

func TestUpdate_Aprobado_Falla(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "RECEIPT", dec(5))
	f.approve(t, mov.ID)

	_, err := f.uc.Update(mov.ID, dto.UpdateMovementRequest{Notes: strPtr("tarde")})
	assert.ErrorIs(t, err, domain.ErrMovementNotPending,
		"solo los PENDING son editables")
}

func TestCancel_Completado_Falla(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "RECEIPT", dec(5))
	f.approve(t, mov.ID)
	_, err := f.uc.Complete(context.Background(), mov.ID)
	require.NoError(t, err)

	_, err = f.uc.Cancel(context.Background(), mov.ID)
	assert.ErrorIs(t, err, domain.ErrMovementCompleted,
		"un COMPLETED es inmutable")
}

func TestDelete_Aprobado_Falla(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "RECEIPT", dec(5))
	f.approve(t, mov.ID)

	err := f.uc.Delete(mov.ID)
	assert.ErrorIs(t, err, domain.ErrMovementActive,
		"solo PENDING o CANCELLED se pueden eliminar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del efecto sobre el ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestComplete_ReceiptSumaAlStock(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "RECEIPT", dec(25))
	f.approve(t, mov.ID)

	out, err := f.uc.Complete(context.Background(), mov.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", out.Status)

	item, _ := f.itemRepo.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(dec(125)), "RECEIPT suma lo en mano")
	assert.True(t, item.AvailableQuantity.Equal(dec(115)), "disponible se recalcula")
}

func TestComplete_IssueInsuficiente_Falla(t *testing.T) {
	f := newFixture()
	// Solo hay 90 disponibles (100 en mano - 10 reservadas)
	mov := f.createMovement(t, "ISSUE", dec(95))
	f.approve(t, mov.ID)

	_, err := f.uc.Complete(context.Background(), mov.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory,
		"ISSUE por encima de lo disponible debe rechazarse")

	// El movimiento sigue APPROVED y el stock intacto
	after, _ := f.movRepo.GetByID(mov.ID)
	assert.Equal(t, entity.MovementStatusApproved, after.Status)
	item, _ := f.itemRepo.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(dec(100)))
}

func TestComplete_IssueRestaDelStock(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "ISSUE", dec(40))
	f.approve(t, mov.ID)

	_, err := f.uc.Complete(context.Background(), mov.ID)
	require.NoError(t, err)

	item, _ := f.itemRepo.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(dec(60)))
	assert.True(t, item.AvailableQuantity.Equal(dec(50)))
}

func TestComplete_AdjustmentAplicaDeltaConSigno(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "ADJUSTMENT", dec(-30))
	f.approve(t, mov.ID)

	_, err := f.uc.Complete(context.Background(), mov.ID)
	require.NoError(t, err)

	item, _ := f.itemRepo.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(dec(70)), "el delta con signo se aplica tal cual")
}

// El piso también aplica al delta con signo: un ADJUSTMENT que dejaría lo en
// mano bajo lo reservado no debe completarse.
func TestComplete_AdjustmentBajoLoReservado_Falla(t *testing.T) {
	f := newFixture()
	// 100 en mano, 10 reservadas: 100 - 95 = 5 < 10
	mov := f.createMovement(t, "ADJUSTMENT", dec(-95))
	f.approve(t, mov.ID)

	_, err := f.uc.Complete(context.Background(), mov.ID)
	assert.ErrorIs(t, err, domain.ErrWouldGoNegative,
		"el ajuste no puede comerse la cantidad reservada")

	after, _ := f.movRepo.GetByID(mov.ID)
	assert.Equal(t, entity.MovementStatusApproved, after.Status)
	item, _ := f.itemRepo.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(dec(100)), "el stock no debe cambiar")
}

// TRANSFER completado no toca el ledger del ítem vinculado: los traslados se
// modelan con movimientos pareados por bodega. Este test documenta esa brecha
// para que un cambio de semántica sea deliberado y no accidental.
func TestComplete_TransferNoAfectaLedger(t *testing.T) {
	f := newFixture()
	mov := f.createMovement(t, "TRANSFER", dec(20))
	f.approve(t, mov.ID)

	out, err := f.uc.Complete(context.Background(), mov.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", out.Status)

	item, _ := f.itemRepo.GetByID("item-1")
	assert.True(t, item.Quantity.Equal(dec(100)), "TRANSFER no modifica lo en mano")
	assert.True(t, item.ReservedQuantity.Equal(dec(10)), "TRANSFER no modifica la reserva")
}
