package entity

import "time"

// Estados operativos de una aeronave.
const (
	AircraftStatusOperational = "OPERATIONAL"
	AircraftStatusMaintenance = "MAINTENANCE"
	AircraftStatusGrounded    = "GROUNDED"
	AircraftStatusRetired     = "RETIRED"
)

// Aircraft representa una aeronave (UAV) de la flota del operador.
type Aircraft struct {
	ID           string
	TailNumber   string // matrícula, única
	Model        string
	SerialNumber string
	Status       string
	FlightHours  float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
