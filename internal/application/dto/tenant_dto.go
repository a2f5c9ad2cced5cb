package dto

import "time"

// CreateTenantRequest entrada de signup de un grupo gastronómico.
type CreateTenantRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// UpdateTenantSubscriptionRequest entrada para mutar la suscripción.
type UpdateTenantSubscriptionRequest struct {
	SubscriptionStatus string     `json:"subscription_status" validate:"required"`
	ExpiresAt          *time.Time `json:"expires_at"`
}

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	Status                string     `json:"status"`
	SubscriptionStatus    string     `json:"subscription_status"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	CanOperate            bool       `json:"can_operate"`
	CreatedAt             time.Time  `json:"created_at"`
}
