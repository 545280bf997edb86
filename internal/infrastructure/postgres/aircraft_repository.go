package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.AircraftRepository = (*AircraftRepo)(nil)

// AircraftRepo implementación de AircraftRepository sobre PostgreSQL (usable con pool o tx).
type AircraftRepo struct {
	q Querier
}

// NewAircraftRepository construye el adaptador de aeronaves. Pasar pool o tx (Querier).
func NewAircraftRepository(q Querier) *AircraftRepo {
	return &AircraftRepo{q: q}
}

// Create persiste una aeronave. TailNumber es único.
func (r *AircraftRepo) Create(aircraft *entity.Aircraft) error {
	query := `
		INSERT INTO aircraft (id, tail_number, model, serial_number, status, flight_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		aircraft.ID, aircraft.TailNumber, aircraft.Model, aircraft.SerialNumber,
		aircraft.Status, aircraft.FlightHours, aircraft.CreatedAt, aircraft.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert aircraft: %w", err)
	}
	return nil
}

// GetByID obtiene una aeronave por ID.
func (r *AircraftRepo) GetByID(id string) (*entity.Aircraft, error) {
	query := `
		SELECT id, tail_number, model, serial_number, status, flight_hours, created_at, updated_at
		FROM aircraft WHERE id = $1`
	var a entity.Aircraft
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.TailNumber, &a.Model, &a.SerialNumber, &a.Status, &a.FlightHours, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get aircraft: %w", err)
	}
	return &a, nil
}

// Update actualiza modelo, estado operativo y horas de vuelo.
func (r *AircraftRepo) Update(aircraft *entity.Aircraft) error {
	query := `
		UPDATE aircraft SET model = $2, status = $3, flight_hours = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		aircraft.ID, aircraft.Model, aircraft.Status, aircraft.FlightHours, aircraft.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update aircraft: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista la flota con paginación.
func (r *AircraftRepo) List(limit, offset int) ([]*entity.Aircraft, error) {
	query := `
		SELECT id, tail_number, model, serial_number, status, flight_hours, created_at, updated_at
		FROM aircraft ORDER BY tail_number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list aircraft: %w", err)
	}
	defer rows.Close()
	var list []*entity.Aircraft
	for rows.Next() {
		var a entity.Aircraft
		if err := rows.Scan(&a.ID, &a.TailNumber, &a.Model, &a.SerialNumber, &a.Status, &a.FlightHours, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan aircraft: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina una aeronave por ID.
func (r *AircraftRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM aircraft WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete aircraft: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
