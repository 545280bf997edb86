package movement

import (
	"context"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con repositorios
// de movimientos y stock atados a esa tx. Aprobar/completar/cancelar son
// secuencias leer-modificar-escribir y corren aquí adentro con bloqueo de fila.
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		itemRepo repository.StockItemRepository,
	) error) error
}
