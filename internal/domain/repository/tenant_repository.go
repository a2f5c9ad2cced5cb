package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant (DIP).
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
	List(limit, offset int) ([]*entity.Tenant, error)
	// SoftDelete marca el tenant como borrado; nunca hay borrado físico.
	SoftDelete(id string) error
}

// UserRepository define el puerto de persistencia para usuarios del personal.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndTenant(email, tenantID string) (*entity.User, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.User, error)
}
