package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleCajero  = "cajero"
	RoleCarnico = "carnico" // registra despostes y entradas de stock
)

// User usuario del sistema (login de mostrador y administración).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
}
