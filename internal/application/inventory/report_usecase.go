package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// idealStockFactor stock ideal = punto de reorden * 1.5.
var idealStockFactor = decimal.NewFromFloat(1.5)

// ReportUseCase reportes de inventario: ítems bajo punto de reorden y export XLSX.
type ReportUseCase struct {
	itemRepo repository.StockItemRepository
	exporter StockExporter
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(itemRepo repository.StockItemRepository, exporter StockExporter) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, exporter: exporter}
}

// LowStock devuelve los ítems en o bajo su punto de reorden con la cantidad
// sugerida de pedido (stock ideal - disponible).
func (uc *ReportUseCase) LowStock(_ context.Context, warehouseID string) ([]dto.LowStockItemDTO, error) {
	items, err := uc.itemRepo.ListBelowReorderPoint(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, it := range items {
		ideal := it.ReorderPoint.Mul(idealStockFactor)
		suggested := ideal.Sub(it.AvailableQuantity)
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		out = append(out, dto.LowStockItemDTO{
			StockItemID:       it.ID,
			PartNumber:        it.PartNumber,
			WarehouseID:       it.WarehouseID,
			AvailableQuantity: it.AvailableQuantity,
			ReorderPoint:      it.ReorderPoint,
			IdealStock:        ideal,
			SuggestedOrderQty: suggested,
		})
	}
	return out, nil
}

// ExportXLSX genera un libro XLSX con el stock actual (opcionalmente por bodega).
func (uc *ReportUseCase) ExportXLSX(_ context.Context, warehouseID string) ([]byte, error) {
	// Sin paginar: el reporte es el estado completo de la bodega.
	items, err := uc.itemRepo.List(warehouseID, 10000, 0)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(items)
}
