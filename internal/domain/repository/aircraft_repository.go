package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// AircraftRepository define el puerto de persistencia para aeronaves (DIP).
type AircraftRepository interface {
	Create(aircraft *entity.Aircraft) error
	GetByID(id string) (*entity.Aircraft, error)
	Update(aircraft *entity.Aircraft) error
	List(limit, offset int) ([]*entity.Aircraft, error)
	Delete(id string) error
}
