package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// StockUseCase es el ledger de inventario: alta de ítems, reserva/liberación de
// cantidad para órdenes de trabajo, ajustes de existencia y baja lógica.
// Las mutaciones corren en transacción con bloqueo de fila (SELECT FOR UPDATE).
type StockUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.StockItemRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, itemRepo repository.StockItemRepository, warehouseRepo repository.WarehouseRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, itemRepo: itemRepo, warehouseRepo: warehouseRepo}
}

// AdjustQuantity aplica ambos deltas (cantidad y reserva) al ítem bloqueado y
// recalcula los derivados. No valida no-negatividad: los callers pre-validan.
// Es el único punto que escribe cantidades en el ledger.
func AdjustQuantity(itemRepo repository.StockItemRepository, itemID string, quantityDelta, reservedDelta decimal.Decimal) (*entity.StockItem, error) {
	item, err := itemRepo.GetForUpdate(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.ApplyDeltas(quantityDelta, reservedDelta)
	item.UpdatedAt = time.Now()
	if err := itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Create da de alta un ítem de stock (recepción inicial en bodega).
func (uc *StockUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.PartNumber == "" || in.WarehouseID == "" || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:               uuid.New().String(),
		PartNumber:       in.PartNumber,
		WarehouseID:      in.WarehouseID,
		Quantity:         in.Quantity,
		ReservedQuantity: decimal.Zero,
		MinStock:         in.MinStock,
		ReorderPoint:     in.ReorderPoint,
		UnitCost:         in.UnitCost,
		ExpiryDate:       in.ExpiryDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	item.RecalcDerived()
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *StockUseCase) GetByID(id string) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toStockItemResponse(item), nil
}

// List lista ítems, opcionalmente filtrados por bodega.
func (uc *StockUseCase) List(warehouseID string, limit, offset int) (*dto.StockItemListResponse, error) {
	list, err := uc.itemRepo.List(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toStockItemResponse(it))
	}
	return &dto.StockItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Reserve aparta cantidad disponible para una orden de trabajo.
// Falla si qty > AvailableQuantity (la reserva nunca excede lo en mano).
func (uc *StockUseCase) Reserve(ctx context.Context, itemID string, qty decimal.Decimal) (*dto.StockItemResponse, error) {
	if !qty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.StockItemResponse
	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if qty.GreaterThan(item.AvailableQuantity) {
			return domain.ErrInsufficientAvailable
		}
		updated, err := AdjustQuantity(itemRepo, itemID, decimal.Zero, qty)
		if err != nil {
			return err
		}
		out = toStockItemResponse(updated)
		return nil
	})
	return out, err
}

// Release devuelve cantidad reservada al pool disponible.
func (uc *StockUseCase) Release(ctx context.Context, itemID string, qty decimal.Decimal) (*dto.StockItemResponse, error) {
	if !qty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.StockItemResponse
	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if qty.GreaterThan(item.ReservedQuantity) {
			return domain.ErrInsufficientReserved
		}
		updated, err := AdjustQuantity(itemRepo, itemID, decimal.Zero, qty.Neg())
		if err != nil {
			return err
		}
		out = toStockItemResponse(updated)
		return nil
	})
	return out, err
}

// AdjustQuantityBy aplica una corrección de existencia con signo (daño, pérdida,
// hallazgo). Falla si el resultado dejaría lo en mano por debajo de lo reservado
// (y por tanto también si quedaría en negativo).
func (uc *StockUseCase) AdjustQuantityBy(ctx context.Context, itemID string, delta decimal.Decimal) (*dto.StockItemResponse, error) {
	if delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.StockItemResponse
	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		// Lo en mano nunca baja de lo reservado: lo apartado para órdenes
		// de trabajo no se corrige por esta vía.
		if item.Quantity.Add(delta).LessThan(item.ReservedQuantity) {
			return domain.ErrWouldGoNegative
		}
		updated, err := AdjustQuantity(itemRepo, itemID, delta, decimal.Zero)
		if err != nil {
			return err
		}
		out = toStockItemResponse(updated)
		return nil
	})
	return out, err
}

// Delete da de baja lógica un ítem. Solo con existencia en cero.
func (uc *StockUseCase) Delete(ctx context.Context, itemID string) error {
	return uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrHasRemainingStock
		}
		return itemRepo.SoftDelete(itemID, time.Now())
	})
}

func toStockItemResponse(s *entity.StockItem) *dto.StockItemResponse {
	if s == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ID:                s.ID,
		PartNumber:        s.PartNumber,
		WarehouseID:       s.WarehouseID,
		Quantity:          s.Quantity,
		ReservedQuantity:  s.ReservedQuantity,
		AvailableQuantity: s.AvailableQuantity,
		MinStock:          s.MinStock,
		ReorderPoint:      s.ReorderPoint,
		UnitCost:          s.UnitCost,
		TotalValue:        s.TotalValue,
		ExpiryDate:        s.ExpiryDate,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
