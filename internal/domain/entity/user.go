package entity

import "time"

// Roles válidos para User. El rol inspector es el único autorizado para liberar
// órdenes de trabajo y firmar tareas RII.
const (
	RoleAdmin     = "admin"
	RoleMecanico  = "mecanico"
	RoleInspector = "inspector"
	RoleBodeguero = "bodeguero"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, mecanico, inspector, bodeguero
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
