package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// AircraftUseCase casos de uso CRUD para aeronaves de la flota.
type AircraftUseCase struct {
	repo repository.AircraftRepository
}

// NewAircraftUseCase construye el caso de uso.
func NewAircraftUseCase(repo repository.AircraftRepository) *AircraftUseCase {
	return &AircraftUseCase{repo: repo}
}

// Create registra una aeronave.
func (uc *AircraftUseCase) Create(in dto.CreateAircraftRequest) (*dto.AircraftResponse, error) {
	if in.TailNumber == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	aircraft := &entity.Aircraft{
		ID:           uuid.New().String(),
		TailNumber:   in.TailNumber,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		Status:       entity.AircraftStatusOperational,
		FlightHours:  in.FlightHours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(aircraft); err != nil {
		return nil, err
	}
	return toAircraftResponse(aircraft), nil
}

// GetByID obtiene una aeronave por ID.
func (uc *AircraftUseCase) GetByID(id string) (*dto.AircraftResponse, error) {
	aircraft, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, domain.ErrNotFound
	}
	return toAircraftResponse(aircraft), nil
}

// Update actualiza modelo, estado operativo u horas de vuelo.
func (uc *AircraftUseCase) Update(id string, in dto.UpdateAircraftRequest) (*dto.AircraftResponse, error) {
	aircraft, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, domain.ErrNotFound
	}
	if in.Model != nil {
		aircraft.Model = *in.Model
	}
	if in.Status != nil {
		aircraft.Status = *in.Status
	}
	if in.FlightHours != nil {
		aircraft.FlightHours = *in.FlightHours
	}
	aircraft.UpdatedAt = time.Now()
	if err := uc.repo.Update(aircraft); err != nil {
		return nil, err
	}
	return toAircraftResponse(aircraft), nil
}

// List lista la flota con paginación.
func (uc *AircraftUseCase) List(limit, offset int) (*dto.AircraftListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AircraftResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAircraftResponse(a))
	}
	return &dto.AircraftListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una aeronave por ID.
func (uc *AircraftUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAircraftResponse(a *entity.Aircraft) *dto.AircraftResponse {
	if a == nil {
		return nil
	}
	return &dto.AircraftResponse{
		ID:           a.ID,
		TailNumber:   a.TailNumber,
		Model:        a.Model,
		SerialNumber: a.SerialNumber,
		Status:       a.Status,
		FlightHours:  a.FlightHours,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
