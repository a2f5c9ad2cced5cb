package entity

import "time"

// Roles de personal.
const (
	RoleAdmin   = "admin"   // administra el tenant completo
	RoleManager = "manager" // administra un restaurante
	RoleWaiter  = "waiter"
	RoleKitchen = "kitchen"
)

// User representa un miembro del personal (o un cliente registrado para pedidos online).
type User struct {
	ID           string
	TenantID     string
	RestaurantID string // vacío para usuarios a nivel tenant (admin)
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
