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

var _ repository.MenuCategoryRepository = (*MenuCategoryRepo)(nil)

// MenuCategoryRepo implementación del puerto MenuCategoryRepository sobre PostgreSQL.
type MenuCategoryRepo struct {
	q Querier
}

// NewMenuCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuCategoryRepository(q Querier) *MenuCategoryRepo {
	return &MenuCategoryRepo{q: q}
}

const menuCategoryColumns = `id, tenant_id, restaurant_id, name, sort_order, is_active, created_at, updated_at, deleted_at`

// Create persiste una categoría de menú.
func (r *MenuCategoryRepo) Create(category *entity.MenuCategory) error {
	query := `
		INSERT INTO menu_categories (id, tenant_id, restaurant_id, name, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.TenantID, category.RestaurantID, category.Name,
		category.SortOrder, category.IsActive, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría vigente acotada por tenant.
func (r *MenuCategoryRepo) GetByID(tenantID, id string) (*entity.MenuCategory, error) {
	query := `SELECT ` + menuCategoryColumns + ` FROM menu_categories WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	var c entity.MenuCategory
	err := r.q.QueryRow(context.Background(), query, id, tenantID).Scan(
		&c.ID, &c.TenantID, &c.RestaurantID, &c.Name, &c.SortOrder, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente, acotada por tenant.
func (r *MenuCategoryRepo) Update(category *entity.MenuCategory) error {
	query := `
		UPDATE menu_categories SET name = $3, sort_order = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.TenantID, category.Name, category.SortOrder,
		category.IsActive, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu category: %w", err)
	}
	return nil
}

// ListByRestaurant lista las categorías vigentes del restaurante ordenadas por sort_order.
func (r *MenuCategoryRepo) ListByRestaurant(tenantID, restaurantID string) ([]*entity.MenuCategory, error) {
	query := `SELECT ` + menuCategoryColumns + ` FROM menu_categories
		WHERE tenant_id = $1 AND restaurant_id = $2 AND deleted_at IS NULL
		ORDER BY sort_order ASC, name ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuCategory
	for rows.Next() {
		var c entity.MenuCategory
		if err := rows.Scan(&c.ID, &c.TenantID, &c.RestaurantID, &c.Name, &c.SortOrder,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan menu category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountItems cuenta los productos vigentes de la categoría.
func (r *MenuCategoryRepo) CountItems(tenantID, categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM menu_items WHERE tenant_id = $1 AND category_id = $2 AND deleted_at IS NULL`,
		tenantID, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return count, nil
}

// SoftDelete marca la categoría como borrada, acotada por tenant.
func (r *MenuCategoryRepo) SoftDelete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE menu_categories SET deleted_at = now(), updated_at = now() WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`,
		id, tenantID)
	if err != nil {
		return fmt.Errorf("delete menu category: %w", err)
	}
	return nil
}
