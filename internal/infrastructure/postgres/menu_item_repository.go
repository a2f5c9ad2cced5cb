package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuItemColumns = `id, tenant_id, restaurant_id, category_id, name, description,
	price, cost_price, is_available, track_inventory, stock_quantity, min_stock_level,
	sort_order, is_vegetarian, is_vegan, is_gluten_free, created_at, updated_at, deleted_at`

// Create persiste un producto del menú.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, tenant_id, restaurant_id, category_id, name, description,
			price, cost_price, is_available, track_inventory, stock_quantity, min_stock_level,
			sort_order, is_vegetarian, is_vegan, is_gluten_free, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TenantID, item.RestaurantID, item.CategoryID, item.Name, item.Description,
		item.Price, item.CostPrice, item.IsAvailable, item.TrackInventory, item.StockQuantity,
		item.MinStockLevel, item.SortOrder, item.IsVegetarian, item.IsVegan, item.IsGlutenFree,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un producto vigente acotado por tenant.
func (r *MenuItemRepo) GetByID(tenantID, id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	row := r.q.QueryRow(context.Background(), query, id, tenantID)
	item, err := scanMenuItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

// GetByIDsForRestaurant resuelve productos por ID exigiendo pertenencia al
// tenant y al restaurante. IDs que no cumplan simplemente no aparecen.
func (r *MenuItemRepo) GetByIDsForRestaurant(tenantID, restaurantID string, ids []string) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + menuItemColumns + ` FROM menu_items
		WHERE tenant_id = $1 AND restaurant_id = $2 AND id = ANY($3) AND deleted_at IS NULL`
	rows, err := r.q.Query(context.Background(), query, tenantID, restaurantID, ids)
	if err != nil {
		return nil, fmt.Errorf("get menu items by ids: %w", err)
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

// Update actualiza un producto existente, acotado por tenant.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET category_id = $3, name = $4, description = $5, price = $6,
			cost_price = $7, is_available = $8, track_inventory = $9, stock_quantity = $10,
			min_stock_level = $11, sort_order = $12, is_vegetarian = $13, is_vegan = $14,
			is_gluten_free = $15, updated_at = $16
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TenantID, item.CategoryID, item.Name, item.Description, item.Price,
		item.CostPrice, item.IsAvailable, item.TrackInventory, item.StockQuantity,
		item.MinStockLevel, item.SortOrder, item.IsVegetarian, item.IsVegan, item.IsGlutenFree,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// ListByRestaurant lista productos vigentes del restaurante con paginación.
func (r *MenuItemRepo) ListByRestaurant(tenantID, restaurantID string, limit, offset int) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items
		WHERE tenant_id = $1 AND restaurant_id = $2 AND deleted_at IS NULL
		ORDER BY sort_order ASC, name ASC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

// ListByCategory lista productos vigentes de una categoría.
func (r *MenuItemRepo) ListByCategory(tenantID, categoryID string) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items
		WHERE tenant_id = $1 AND category_id = $2 AND deleted_at IS NULL
		ORDER BY sort_order ASC, name ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list menu items by category: %w", err)
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

// SetAvailability fija la disponibilidad sin tocar el stock. Devuelve filas afectadas.
func (r *MenuItemRepo) SetAvailability(tenantID, id string, available bool) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE menu_items SET is_available = $3, updated_at = now()
		 WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`,
		id, tenantID, available)
	if err != nil {
		return 0, fmt.Errorf("set availability: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SetStock fija la cantidad en inventario. El predicado track_inventory = true
// va en el propio UPDATE: 0 filas significa que el producto no existe en el
// tenant o no lleva control de inventario.
func (r *MenuItemRepo) SetStock(tenantID, id string, quantity int) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE menu_items SET stock_quantity = $3, updated_at = now()
		 WHERE id = $1 AND tenant_id = $2 AND track_inventory = true AND deleted_at IS NULL`,
		id, tenantID, quantity)
	if err != nil {
		return 0, fmt.Errorf("set stock: %w", err)
	}
	return tag.RowsAffected(), nil
}

// BulkSetAvailability fija la disponibilidad de varios productos de un
// restaurante. IDs fuera del tenant/restaurante no cuentan en el resultado.
func (r *MenuItemRepo) BulkSetAvailability(tenantID, restaurantID string, ids []string, available bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.q.Exec(context.Background(),
		`UPDATE menu_items SET is_available = $4, updated_at = now()
		 WHERE tenant_id = $1 AND restaurant_id = $2 AND id = ANY($3) AND deleted_at IS NULL`,
		tenantID, restaurantID, ids, available)
	if err != nil {
		return 0, fmt.Errorf("bulk set availability: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SoftDelete marca el producto como borrado; el historial de pedidos lo
// sigue referenciando por snapshot.
func (r *MenuItemRepo) SoftDelete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE menu_items SET deleted_at = now(), updated_at = now() WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`,
		id, tenantID)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := row.Scan(&m.ID, &m.TenantID, &m.RestaurantID, &m.CategoryID, &m.Name, &m.Description,
		&m.Price, &m.CostPrice, &m.IsAvailable, &m.TrackInventory, &m.StockQuantity,
		&m.MinStockLevel, &m.SortOrder, &m.IsVegetarian, &m.IsVegan, &m.IsGlutenFree,
		&m.CreatedAt, &m.UpdatedAt, &m.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMenuItems(rows pgx.Rows) ([]*entity.MenuItem, error) {
	var list []*entity.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
