package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// TableCategoryRepository define el puerto de persistencia para TableCategory.
type TableCategoryRepository interface {
	Create(category *entity.TableCategory) error
	GetByID(tenantID, id string) (*entity.TableCategory, error)
	Update(category *entity.TableCategory) error
	ListByRestaurant(tenantID, restaurantID string) ([]*entity.TableCategory, error)
	SoftDelete(tenantID, id string) error
}

// TableRepository define el puerto de persistencia para Table.
type TableRepository interface {
	Create(table *entity.Table) error
	GetByID(tenantID, id string) (*entity.Table, error)
	Update(table *entity.Table) error
	ListByRestaurant(tenantID, restaurantID string) ([]*entity.Table, error)
	ListByCategory(tenantID, categoryID string) ([]*entity.Table, error)
	// UpdateStatus escribe el estado en un único UPDATE atómico acotado por
	// id + tenant. Devuelve filas afectadas (0 = fuera del alcance del tenant).
	UpdateStatus(tenantID, id, status string) (int64, error)
	// BulkUpdateStatus aplica el estado a varias mesas en una sola sentencia;
	// los IDs fuera del tenant quedan excluidos por el WHERE y no cuentan.
	BulkUpdateStatus(tenantID string, ids []string, status string) (int64, error)
	// SoftDelete borra la mesa solo si no tiene pedidos activos (guardia en la
	// misma sentencia). Devuelve filas afectadas.
	SoftDelete(tenantID, id string) (int64, error)
}
