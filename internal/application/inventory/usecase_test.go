package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/inventory"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockItemRepo struct {
	items map[string]*entity.StockItem
}

func newFakeStockItemRepo() *fakeStockItemRepo {
	return &fakeStockItemRepo{items: make(map[string]*entity.StockItem)}
}

func (r *fakeStockItemRepo) Create(item *entity.StockItem) error {
	r.items[item.ID] = item
	return nil
}

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
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeStockItemRepo) List(warehouseID string, limit, offset int) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.items {
		if it.DeletedAt != nil {
			continue
		}
		if warehouseID != "" && it.WarehouseID != warehouseID {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStockItemRepo) ListBelowReorderPoint(warehouseID string) ([]*entity.StockItem, error) {
	all, _ := r.List(warehouseID, 0, 0)
	var out []*entity.StockItem
	for _, it := range all {
		if it.BelowReorderPoint() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeStockItemRepo) SoftDelete(id string, at time.Time) error {
	item, ok := r.items[id]
	if !ok || item.DeletedAt != nil {
		return domain.ErrNotFound
	}
	item.DeletedAt = &at
	return nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, id := range ids {
		r.warehouses[id] = &entity.Warehouse{ID: id, Code: id, Name: "Bodega " + id}
	}
	return r
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) Delete(id string) error { return nil }

// fakeTxRunner ejecuta el callback directamente sobre el repo in-memory
// (sin transacción real; la semántica de bloqueo no aplica en unit tests).
type fakeTxRunner struct {
	itemRepo repository.StockItemRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(itemRepo repository.StockItemRepository) error) error {
	return fn(r.itemRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// seedItem crea un ítem con 100 en mano, 10 reservadas (90 disponibles).
func seedItem(repo *fakeStockItemRepo) *entity.StockItem {
	item := &entity.StockItem{
		ID:               "item-1",
		PartNumber:       "PN-4711",
		WarehouseID:      "wh-1",
		Quantity:         dec(100),
		ReservedQuantity: dec(10),
		MinStock:         dec(5),
		ReorderPoint:     dec(20),
	}
	item.RecalcDerived()
	repo.items[item.ID] = item
	return item
}

func buildStockUC(repo *fakeStockItemRepo) *inventory.StockUseCase {
	return inventory.NewStockUseCase(&fakeTxRunner{itemRepo: repo}, repo, newFakeWarehouseRepo("wh-1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de reserva y liberación
// ──────────────────────────────────────────────────────────────────────────────

// Con 100 en mano y 10 reservadas solo hay 90 disponibles: reservar 100 falla.
func TestReserve_ExcedeDisponible_Falla(t *testing.T) {
	repo := newFakeStockItemRepo()
	seedItem(repo)
	uc := buildStockUC(repo)

	_, err := uc.Reserve(context.Background(), "item-1", dec(100))
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailable,
		"reservar más de lo disponible debe fallar")

	// El ítem no debe cambiar tras el fallo
	after, _ := repo.GetByID("item-1")
	assert.True(t, after.ReservedQuantity.Equal(dec(10)), "la reserva no debe cambiar")
}

func TestReserve_ActualizaReservaYDisponible(t *testing.T) {
	repo := newFakeStockItemRepo()
	seedItem(repo)
	uc := buildStockUC(repo)

	out, err := uc.Reserve(context.Background(), "item-1", dec(50))
	require.NoError(t, err)

	assert.True(t, out.Quantity.Equal(dec(100)), "lo en mano no cambia al reservar")
	assert.True(t, out.ReservedQuantity.Equal(dec(60)), "reservadas: 10+50")
	assert.True(t, out.AvailableQuantity.Equal(dec(40)), "disponibles: 100-60")
}

func TestReserveRelease_RoundTrip(t *testing.T) {
	repo := newFakeStockItemRepo()
	seedItem(repo)
	uc := buildStockUC(repo)

	_, err := uc.Reserve(context.Background(), "item-1", dec(30))
	require.NoError(t, err)

	out, err := uc.Release(context.Background(), "item-1", dec(30))
	require.NoError(t, err)

	assert.True(t, out.ReservedQuantity.Equal(dec(10)), "la reserva vuelve al valor inicial")
	assert.True(t, out.AvailableQuantity.Equal(dec(90)), "lo disponible vuelve al valor inicial")
}

func TestRelease_ExcedeReservado_Falla(t *testing.T) {
	repo := newFakeStockItemRepo()
	seedItem(repo)
	uc := buildStockUC(repo)

	_, err := uc.Release(context.Background(), "item-1", dec(11))
	assert.ErrorIs(t, err, domain.ErrInsufficientReserved,
		"liberar más de lo reservado debe fallar")
}

func TestReserve_CantidadNoPositiva_Falla(t *testing.T) {
	repo := newFakeStockItemRepo()
	seedItem(repo)
	uc := buildStockUC(repo)

	_, err := uc.Reserve(context.Background(), "item-1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ajuste
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustQuantityBy_DeltaNegativo_NoBajaDeCero(t *testing.T) {
	repo := newFakeStockItemRepo()
	seedItem(repo)
	uc := buildStockUC(repo)

	_, err := uc.AdjustQuantityBy(context.Background(), "item-1", dec(-101))
	assert.ErrorIs(t, err, domain.ErrWouldGoNegative,
		"un ajuste que deja lo en mano en negativo debe rechazarse")
}

// Lo en mano nunca baja de lo reservado: un ajuste negativo no puede comerse
// la cantidad apartada para órdenes de trabajo.
func TestAdjustQuantityBy_NoBajaDeLoReservado(t *testing.T) {
	repo := newFakeStockItemRepo()
	item := &entity.StockItem{
		ID:               "item-2",
		PartNumber:       "PN-8080",
		WarehouseID:      "wh-1",
		Quantity:         dec(100),
		ReservedQuantity: dec(80),
	}
	item.RecalcDerived()
	repo.items[item.ID] = item
	uc := buildStockUC(repo)

	// 100 - 50 = 50 < 80 reservadas
	_, err := uc.AdjustQuantityBy(context.Background(), "item-2", dec(-50))
	assert.ErrorIs(t, err, domain.ErrWouldGoNegative,
		"un ajuste que deja lo en mano bajo lo reservado debe rechazarse")

	after, _ := repo.GetByID("item-2")
	assert.True(t, after.Quantity.Equal(dec(100)), "lo en mano no debe cambiar")
	assert.True(t, after.AvailableQuantity.Equal(dec(20)), "lo disponible no debe cambiar")
}

func TestAdjustQuantityBy_RecalculaDerivados(t *testing.T) {
	repo := newFakeStockItemRepo()
	item := seedItem(repo)
	cost := dec(7)
	item.UnitCost = &cost
	uc := buildStockUC(repo)

	out, err := uc.AdjustQuantityBy(context.Background(), "item-1", dec(-40))
	require.NoError(t, err)

	assert.True(t, out.Quantity.Equal(dec(60)))
	assert.True(t, out.AvailableQuantity.Equal(dec(50)), "disponibles: 60-10")
	require.NotNil(t, out.TotalValue)
	assert.True(t, out.TotalValue.Equal(dec(420)), "valor total: 60*7")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de alta y baja
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_BodegaInexistente_Falla(t *testing.T) {
	repo := newFakeStockItemRepo()
	uc := buildStockUC(repo)

	_, err := uc.Create(dto.CreateStockItemRequest{
		PartNumber:  "PN-1",
		WarehouseID: "wh-inexistente",
		Quantity:    dec(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_ConExistencia_Falla(t *testing.T) {
	repo := newFakeStockItemRepo()
	seedItem(repo)
	uc := buildStockUC(repo)

	err := uc.Delete(context.Background(), "item-1")
	assert.ErrorIs(t, err, domain.ErrHasRemainingStock,
		"no se puede dar de baja un ítem con existencia")
}

func TestDelete_EnCero_SoftDelete(t *testing.T) {
	repo := newFakeStockItemRepo()
	item := &entity.StockItem{ID: "item-0", PartNumber: "PN-0", WarehouseID: "wh-1"}
	item.RecalcDerived()
	repo.items[item.ID] = item
	uc := buildStockUC(repo)

	require.NoError(t, uc.Delete(context.Background(), "item-0"))

	// El ítem soft-deleted desaparece para los lectores
	got, err := repo.GetByID("item-0")
	require.NoError(t, err)
	assert.Nil(t, got, "el ítem eliminado no debe ser visible")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de reporte de reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_SugiereCantidadHastaIdeal(t *testing.T) {
	repo := newFakeStockItemRepo()
	item := &entity.StockItem{
		ID:           "item-low",
		PartNumber:   "PN-LOW",
		WarehouseID:  "wh-1",
		Quantity:     dec(8),
		ReorderPoint: dec(20),
	}
	item.RecalcDerived()
	repo.items[item.ID] = item

	uc := inventory.NewReportUseCase(repo, nil)
	out, err := uc.LowStock(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 1)

	// ideal = 20 * 1.5 = 30; sugerido = 30 - 8 = 22
	assert.True(t, out[0].IdealStock.Equal(dec(30)), "stock ideal = punto de reorden * 1.5")
	assert.True(t, out[0].SuggestedOrderQty.Equal(dec(22)), "sugerido = ideal - disponible")
}

func TestLowStock_ItemSano_NoAparece(t *testing.T) {
	repo := newFakeStockItemRepo()
	seedItem(repo) // 90 disponibles, reorden en 20

	uc := inventory.NewReportUseCase(repo, nil)
	out, err := uc.LowStock(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, out, "ítems sobre el punto de reorden no deben aparecer")
}
