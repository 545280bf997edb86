package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos de stock.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	GetForUpdate(id string) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	List(status entity.MovementStatus, movType entity.MovementType, limit, offset int) ([]*entity.Movement, error)
	Delete(id string) error
}
