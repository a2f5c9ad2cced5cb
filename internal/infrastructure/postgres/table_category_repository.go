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

var _ repository.TableCategoryRepository = (*TableCategoryRepo)(nil)

// TableCategoryRepo implementación del puerto TableCategoryRepository sobre PostgreSQL.
type TableCategoryRepo struct {
	q Querier
}

// NewTableCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTableCategoryRepository(q Querier) *TableCategoryRepo {
	return &TableCategoryRepo{q: q}
}

const tableCategoryColumns = `id, tenant_id, restaurant_id, name, description, sort_order, color, created_at, updated_at, deleted_at`

// Create persiste una categoría de mesas.
func (r *TableCategoryRepo) Create(category *entity.TableCategory) error {
	query := `
		INSERT INTO table_categories (id, tenant_id, restaurant_id, name, description, sort_order, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.TenantID, category.RestaurantID, category.Name,
		category.Description, category.SortOrder, category.Color,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert table category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría vigente acotada por tenant.
func (r *TableCategoryRepo) GetByID(tenantID, id string) (*entity.TableCategory, error) {
	query := `SELECT ` + tableCategoryColumns + ` FROM table_categories WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	var c entity.TableCategory
	err := r.q.QueryRow(context.Background(), query, id, tenantID).Scan(
		&c.ID, &c.TenantID, &c.RestaurantID, &c.Name, &c.Description, &c.SortOrder,
		&c.Color, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente, acotada por tenant.
func (r *TableCategoryRepo) Update(category *entity.TableCategory) error {
	query := `
		UPDATE table_categories SET name = $3, description = $4, sort_order = $5, color = $6, updated_at = $7
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.TenantID, category.Name, category.Description,
		category.SortOrder, category.Color, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update table category: %w", err)
	}
	return nil
}

// ListByRestaurant lista categorías vigentes del restaurante ordenadas por sort_order.
func (r *TableCategoryRepo) ListByRestaurant(tenantID, restaurantID string) ([]*entity.TableCategory, error) {
	query := `SELECT ` + tableCategoryColumns + ` FROM table_categories
		WHERE tenant_id = $1 AND restaurant_id = $2 AND deleted_at IS NULL
		ORDER BY sort_order ASC, name ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list table categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.TableCategory
	for rows.Next() {
		var c entity.TableCategory
		if err := rows.Scan(&c.ID, &c.TenantID, &c.RestaurantID, &c.Name, &c.Description,
			&c.SortOrder, &c.Color, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan table category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SoftDelete marca la categoría como borrada; las mesas quedan sin categoría.
func (r *TableCategoryRepo) SoftDelete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE table_categories SET deleted_at = now(), updated_at = now() WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`,
		id, tenantID)
	if err != nil {
		return fmt.Errorf("delete table category: %w", err)
	}
	return nil
}
