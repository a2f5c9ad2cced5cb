package entity

import "time"

// Estados del tenant.
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
)

// Estados de la suscripción SaaS.
const (
	SubscriptionActive    = "active"
	SubscriptionSuspended = "suspended"
	SubscriptionCancelled = "cancelled"
)

// Tenant representa un grupo gastronómico: la raíz de aislamiento de datos.
// Todas las entidades hijas (restaurantes, menús, mesas, pedidos, usuarios)
// cargan su TenantID y toda consulta se acota por él.
type Tenant struct {
	ID                    string
	Name                  string
	Email                 string
	Phone                 string
	Status                string // active, inactive
	SubscriptionStatus    string // active, suspended, cancelled
	SubscriptionExpiresAt *time.Time // nil = sin vencimiento
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time // soft delete; nunca se borra en operación normal
}

// CanOperate indica si el tenant puede autenticarse en operaciones acotadas:
// requiere estado activo y suscripción activa no vencida.
func (t *Tenant) CanOperate(now time.Time) bool {
	if t.Status != TenantStatusActive || t.DeletedAt != nil {
		return false
	}
	if t.SubscriptionStatus != SubscriptionActive {
		return false
	}
	if t.SubscriptionExpiresAt != nil && !t.SubscriptionExpiresAt.After(now) {
		return false
	}
	return true
}
