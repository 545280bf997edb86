package inventory

import (
	"context"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stock atado a esa tx. Toda secuencia leer-modificar-escribir
// sobre un ítem (reserva, liberación, ajuste, baja) debe correr aquí adentro
// con GetForUpdate para no perder actualizaciones entre lectores concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(itemRepo repository.StockItemRepository) error) error
}

// StockExporter genera un libro XLSX con el estado actual del stock.
type StockExporter interface {
	Export(items []*entity.StockItem) ([]byte, error)
}
