// Package excel genera libros XLSX con el estado del stock usando excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Mantenimiento-api/internal/application/inventory"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

var _ inventory.StockExporter = (*StockExporter)(nil)

// StockExporter implementa inventory.StockExporter sobre excelize.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

const sheetName = "Stock"

var headers = []string{
	"Part Number", "Bodega", "Cantidad", "Reservada", "Disponible",
	"Stock Mínimo", "Punto de Reorden", "Costo Unitario", "Valor Total", "Vencimiento",
}

// Export genera un libro XLSX con una fila por ítem de stock.
func (e *StockExporter) Export(items []*entity.StockItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Cabecera en negrilla
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DCE6F1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, item := range items {
		unitCost := ""
		if item.UnitCost != nil {
			unitCost = item.UnitCost.StringFixed(2)
		}
		totalValue := ""
		if item.TotalValue != nil {
			totalValue = item.TotalValue.StringFixed(2)
		}
		expiry := ""
		if item.ExpiryDate != nil {
			expiry = item.ExpiryDate.Format("2006-01-02")
		}
		values := []any{
			item.PartNumber,
			item.WarehouseID,
			item.Quantity.String(),
			item.ReservedQuantity.String(),
			item.AvailableQuantity.String(),
			item.MinStock.String(),
			item.ReorderPoint.String(),
			unitCost,
			totalValue,
			expiry,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: escribir celda: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
