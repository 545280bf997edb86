package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/inventory"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// UseCase procesa movimientos de stock: PENDING → APPROVED → COMPLETED, con
// CANCELLED como alterno desde PENDING/APPROVED. El ledger solo se afecta al
// completar, dentro de una transacción con bloqueo de fila.
type UseCase struct {
	txRunner      TxRunner
	movRepo       repository.MovementRepository
	itemRepo      repository.StockItemRepository
	warehouseRepo repository.WarehouseRepository
	counterRepo   repository.CounterRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	movRepo repository.MovementRepository,
	itemRepo repository.StockItemRepository,
	warehouseRepo repository.WarehouseRepository,
	counterRepo repository.CounterRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		movRepo:       movRepo,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		counterRepo:   counterRepo,
	}
}

// Create registra un movimiento en PENDING. Valida el tipo, las bodegas que el
// tipo exige y los referentes; asigna consecutivo diario por tipo.
func (uc *UseCase) Create(in dto.CreateMovementRequest, requestedBy string) (*dto.MovementResponse, error) {
	movType := entity.MovementType(in.Type)
	if !movType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	// Solo ADJUSTMENT/COUNT admiten delta con signo; el resto usa magnitud positiva.
	if movType != entity.MovementTypeAdjustment && movType != entity.MovementTypeCount && in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := validateWarehousePair(movType, in.FromWarehouseID, in.ToWarehouseID); err != nil {
		return nil, err
	}
	if err := uc.checkReferents(in); err != nil {
		return nil, err
	}

	now := time.Now()
	number, err := uc.nextNumber(movType, now)
	if err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ID:              uuid.New().String(),
		MovementNumber:  number,
		Type:            movType,
		Status:          entity.MovementStatusPending,
		StockItemID:     in.StockItemID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		Reference:       in.Reference,
		Notes:           in.Notes,
		RequestedBy:     requestedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	mov.RecalcTotalCost()
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Update modifica un movimiento; solo se permite mientras está en PENDING.
func (uc *UseCase) Update(id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if mov.Status != entity.MovementStatusPending {
		return nil, domain.ErrMovementNotPending
	}
	if in.Quantity != nil {
		if in.Quantity.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		mov.Quantity = *in.Quantity
	}
	if in.UnitCost != nil {
		mov.UnitCost = in.UnitCost
	}
	if in.Reference != nil {
		mov.Reference = *in.Reference
	}
	if in.Notes != nil {
		mov.Notes = *in.Notes
	}
	mov.RecalcTotalCost()
	mov.UpdatedAt = time.Now()
	if err := uc.movRepo.Update(mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Approve pasa el movimiento de PENDING a APPROVED y estampa quién y cuándo.
func (uc *UseCase) Approve(ctx context.Context, id, approvedBy string) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.txRunner.RunMovement(ctx, func(movRepo repository.MovementRepository, _ repository.StockItemRepository) error {
		mov, err := movRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Status != entity.MovementStatusPending {
			return domain.ErrMovementNotPending
		}
		now := time.Now()
		mov.Status = entity.MovementStatusApproved
		mov.ApprovedBy = &approvedBy
		mov.ApprovedAt = &now
		mov.UpdatedAt = now
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	return out, err
}

// Complete pasa el movimiento de APPROVED a COMPLETED y aplica el efecto sobre
// el ledger según el tipo, solo si hay un ítem de stock vinculado:
//
//	RECEIPT/RETURN   suman la cantidad en mano.
//	ISSUE/SCRAP      restan; falla si disponible < cantidad.
//	ADJUSTMENT/COUNT aplican la cantidad como delta con signo ya calculado;
//	                 falla si dejaría lo en mano bajo lo reservado.
//	TRANSFER         no toca el ledger: se modela con movimientos pareados por
//	                 bodega (brecha conocida, documentada en tests).
func (uc *UseCase) Complete(ctx context.Context, id string) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.txRunner.RunMovement(ctx, func(movRepo repository.MovementRepository, itemRepo repository.StockItemRepository) error {
		mov, err := movRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Status != entity.MovementStatusApproved {
			return domain.ErrMovementNotApproved
		}
		if mov.StockItemID != nil {
			if err := applyLedgerEffect(itemRepo, mov); err != nil {
				return err
			}
		}
		now := time.Now()
		mov.Status = entity.MovementStatusCompleted
		mov.CompletedAt = &now
		mov.UpdatedAt = now
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	return out, err
}

// applyLedgerEffect aplica el delta del movimiento al ítem vinculado.
func applyLedgerEffect(itemRepo repository.StockItemRepository, mov *entity.Movement) error {
	switch mov.Type {
	case entity.MovementTypeReceipt, entity.MovementTypeReturn:
		_, err := inventory.AdjustQuantity(itemRepo, *mov.StockItemID, mov.Quantity, decimal.Zero)
		return err
	case entity.MovementTypeIssue, entity.MovementTypeScrap:
		item, err := itemRepo.GetForUpdate(*mov.StockItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.AvailableQuantity.LessThan(mov.Quantity) {
			return domain.ErrInsufficientInventory
		}
		_, err = inventory.AdjustQuantity(itemRepo, *mov.StockItemID, mov.Quantity.Neg(), decimal.Zero)
		return err
	case entity.MovementTypeAdjustment, entity.MovementTypeCount:
		// La cantidad ya viene como delta con signo; no se re-deriva aquí.
		// El piso sigue aplicando: lo en mano no baja de lo reservado.
		item, err := itemRepo.GetForUpdate(*mov.StockItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Quantity.Add(mov.Quantity).LessThan(item.ReservedQuantity) {
			return domain.ErrWouldGoNegative
		}
		_, err = inventory.AdjustQuantity(itemRepo, *mov.StockItemID, mov.Quantity, decimal.Zero)
		return err
	case entity.MovementTypeTransfer:
		return nil
	}
	return domain.ErrInvalidInput
}

// Cancel pasa el movimiento a CANCELLED desde PENDING o APPROVED.
// No requiere reverso del ledger: solo los COMPLETED lo afectan.
func (uc *UseCase) Cancel(ctx context.Context, id string) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.txRunner.RunMovement(ctx, func(movRepo repository.MovementRepository, _ repository.StockItemRepository) error {
		mov, err := movRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Status == entity.MovementStatusCompleted {
			return domain.ErrMovementCompleted
		}
		mov.Status = entity.MovementStatusCancelled
		mov.UpdatedAt = time.Now()
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	return out, err
}

// Delete elimina un movimiento; solo en PENDING o CANCELLED.
func (uc *UseCase) Delete(id string) error {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	if mov.Status != entity.MovementStatusPending && mov.Status != entity.MovementStatusCancelled {
		return domain.ErrMovementActive
	}
	return uc.movRepo.Delete(id)
}

// GetByID obtiene un movimiento por ID.
func (uc *UseCase) GetByID(id string) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(mov), nil
}

// List lista movimientos con filtros opcionales por estado y tipo.
func (uc *UseCase) List(status, movType string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(entity.MovementStatus(status), entity.MovementType(movType), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// validateWarehousePair valida los requisitos de bodega según el tipo.
func validateWarehousePair(movType entity.MovementType, from, to *string) error {
	has := func(p *string) bool { return p != nil && *p != "" }
	switch movType {
	case entity.MovementTypeReceipt, entity.MovementTypeReturn:
		if !has(to) {
			return domain.ErrInvalidWarehousePair
		}
	case entity.MovementTypeIssue, entity.MovementTypeScrap,
		entity.MovementTypeAdjustment, entity.MovementTypeCount:
		if !has(from) {
			return domain.ErrInvalidWarehousePair
		}
	case entity.MovementTypeTransfer:
		if !has(from) || !has(to) || *from == *to {
			return domain.ErrInvalidWarehousePair
		}
	}
	return nil
}

// checkReferents valida que bodegas e ítem vinculado existan.
func (uc *UseCase) checkReferents(in dto.CreateMovementRequest) error {
	for _, whID := range []*string{in.FromWarehouseID, in.ToWarehouseID} {
		if whID == nil || *whID == "" {
			continue
		}
		wh, err := uc.warehouseRepo.GetByID(*whID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrNotFound
		}
	}
	if in.StockItemID != nil && *in.StockItemID != "" {
		item, err := uc.itemRepo.GetByID(*in.StockItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// nextNumber asigna el consecutivo <PREFIJO>-<YYYYMMDD>-<seq>, diario por tipo.
func (uc *UseCase) nextNumber(movType entity.MovementType, now time.Time) (string, error) {
	period := now.Format("20060102")
	seq, err := uc.counterRepo.Next("movement:"+string(movType), period)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%04d", movType.Prefix(), period, seq), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:              m.ID,
		MovementNumber:  m.MovementNumber,
		Type:            string(m.Type),
		Status:          string(m.Status),
		StockItemID:     m.StockItemID,
		FromWarehouseID: m.FromWarehouseID,
		ToWarehouseID:   m.ToWarehouseID,
		Quantity:        m.Quantity,
		UnitCost:        m.UnitCost,
		TotalCost:       m.TotalCost,
		Reference:       m.Reference,
		Notes:           m.Notes,
		RequestedBy:     m.RequestedBy,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		CompletedAt:     m.CompletedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
