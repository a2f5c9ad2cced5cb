package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// RestaurantRepository define el puerto de persistencia para Restaurant.
// Todos los métodos acotan por tenantID: un ID de otro tenant se comporta
// como inexistente (nil / 0 filas), nunca como acceso.
type RestaurantRepository interface {
	Create(restaurant *entity.Restaurant) error
	GetByID(tenantID, id string) (*entity.Restaurant, error)
	Update(restaurant *entity.Restaurant) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Restaurant, error)
	SoftDelete(tenantID, id string) error
}
