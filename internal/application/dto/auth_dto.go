package dto

import "time"

// RegisterRequest entrada para registrar un usuario de personal.
type RegisterRequest struct {
	TenantID     string `json:"tenant_id" validate:"required"`
	RestaurantID string `json:"restaurant_id"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Name         string `json:"name"`
	Role         string `json:"role"` // admin, manager, waiter, kitchen
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
