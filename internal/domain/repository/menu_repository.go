package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// MenuCategoryRepository define el puerto de persistencia para MenuCategory.
type MenuCategoryRepository interface {
	Create(category *entity.MenuCategory) error
	GetByID(tenantID, id string) (*entity.MenuCategory, error)
	Update(category *entity.MenuCategory) error
	ListByRestaurant(tenantID, restaurantID string) ([]*entity.MenuCategory, error)
	// CountItems cuenta los productos vigentes de la categoría (guardia de borrado).
	CountItems(tenantID, categoryID string) (int, error)
	SoftDelete(tenantID, id string) error
}

// MenuItemRepository define el puerto de persistencia para MenuItem.
// Las operaciones de escritura devuelven las filas afectadas cuando la
// semántica de lote lo requiere: un ID fuera del tenant simplemente no cuenta.
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(tenantID, id string) (*entity.MenuItem, error)
	// GetByIDsForRestaurant resuelve productos por ID exigiendo pertenencia al
	// tenant Y al restaurante (un producto de un restaurante hermano no cuenta).
	GetByIDsForRestaurant(tenantID, restaurantID string, ids []string) ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	ListByRestaurant(tenantID, restaurantID string, limit, offset int) ([]*entity.MenuItem, error)
	ListByCategory(tenantID, categoryID string) ([]*entity.MenuItem, error)
	SetAvailability(tenantID, id string, available bool) (int64, error)
	// SetStock fija la cantidad; exige track_inventory = true en el mismo UPDATE.
	SetStock(tenantID, id string, quantity int) (int64, error)
	BulkSetAvailability(tenantID, restaurantID string, ids []string, available bool) (int64, error)
	SoftDelete(tenantID, id string) error
}
