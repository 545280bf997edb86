package dto

import "time"

// CreateAircraftRequest body para POST /api/aircraft.
type CreateAircraftRequest struct {
	TailNumber   string  `json:"tail_number"`
	Model        string  `json:"model"`
	SerialNumber string  `json:"serial_number,omitempty"`
	FlightHours  float64 `json:"flight_hours,omitempty"`
}

// UpdateAircraftRequest body para PUT /api/aircraft/:id.
type UpdateAircraftRequest struct {
	Model       *string  `json:"model,omitempty"`
	Status      *string  `json:"status,omitempty"`
	FlightHours *float64 `json:"flight_hours,omitempty"`
}

// AircraftResponse representación de una aeronave.
type AircraftResponse struct {
	ID           string    `json:"id"`
	TailNumber   string    `json:"tail_number"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serial_number,omitempty"`
	Status       string    `json:"status"`
	FlightHours  float64   `json:"flight_hours"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AircraftListResponse listado paginado de aeronaves.
type AircraftListResponse struct {
	Items []AircraftResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
