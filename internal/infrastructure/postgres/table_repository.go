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

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo implementación del puerto TableRepository sobre PostgreSQL.
type TableRepo struct {
	q Querier
}

// NewTableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

const tableColumns = `id, tenant_id, restaurant_id, category_id, number, capacity, shape, floor, status, created_at, updated_at, deleted_at`

// Create persiste una mesa nueva.
func (r *TableRepo) Create(table *entity.Table) error {
	query := `
		INSERT INTO tables (id, tenant_id, restaurant_id, category_id, number, capacity, shape, floor, status, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		table.ID, table.TenantID, table.RestaurantID, table.CategoryID, table.Number,
		table.Capacity, table.Shape, table.Floor, table.Status,
		table.CreatedAt, table.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// GetByID obtiene una mesa vigente acotada por tenant.
func (r *TableRepo) GetByID(tenantID, id string) (*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	row := r.q.QueryRow(context.Background(), query, id, tenantID)
	t, err := scanTable(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table: %w", err)
	}
	return t, nil
}

// Update actualiza los atributos físicos de una mesa, acotada por tenant.
func (r *TableRepo) Update(table *entity.Table) error {
	query := `
		UPDATE tables SET category_id = NULLIF($3, ''), number = $4, capacity = $5,
			shape = $6, floor = $7, updated_at = $8
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		table.ID, table.TenantID, table.CategoryID, table.Number, table.Capacity,
		table.Shape, table.Floor, table.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update table: %w", err)
	}
	return nil
}

// ListByRestaurant lista las mesas vigentes del restaurante.
func (r *TableRepo) ListByRestaurant(tenantID, restaurantID string) ([]*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables
		WHERE tenant_id = $1 AND restaurant_id = $2 AND deleted_at IS NULL
		ORDER BY number ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	return collectTables(rows)
}

// ListByCategory lista las mesas vigentes de una categoría.
func (r *TableRepo) ListByCategory(tenantID, categoryID string) ([]*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables
		WHERE tenant_id = $1 AND category_id = $2 AND deleted_at IS NULL
		ORDER BY number ASC`
	rows, err := r.q.Query(context.Background(), query, tenantID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list tables by category: %w", err)
	}
	defer rows.Close()
	return collectTables(rows)
}

// UpdateStatus escribe el estado en un único UPDATE atómico acotado por
// id + tenant. La mesa de otro tenant no matchea y devuelve 0 filas.
func (r *TableRepo) UpdateStatus(tenantID, id, status string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE tables SET status = $3, updated_at = now()
		 WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`,
		id, tenantID, status)
	if err != nil {
		return 0, fmt.Errorf("update table status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// BulkUpdateStatus aplica el estado a varias mesas en una sola sentencia.
func (r *TableRepo) BulkUpdateStatus(tenantID string, ids []string, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.q.Exec(context.Background(),
		`UPDATE tables SET status = $3, updated_at = now()
		 WHERE tenant_id = $1 AND id = ANY($2) AND deleted_at IS NULL`,
		tenantID, ids, status)
	if err != nil {
		return 0, fmt.Errorf("bulk update table status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SoftDelete borra la mesa solo si no tiene pedidos activos. La guardia va
// en la misma sentencia: el chequeo previo del caso de uso puede quedar
// obsoleto entre lectura y escritura.
func (r *TableRepo) SoftDelete(tenantID, id string) (int64, error) {
	query := `
		UPDATE tables SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM orders o
			WHERE o.table_id = tables.id AND o.tenant_id = tables.tenant_id
			  AND o.status = ANY($3)
		  )`
	tag, err := r.q.Exec(context.Background(), query, id, tenantID, entity.ActiveOrderStatuses)
	if err != nil {
		return 0, fmt.Errorf("delete table: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanTable(row pgx.Row) (*entity.Table, error) {
	var t entity.Table
	var categoryID *string
	err := row.Scan(&t.ID, &t.TenantID, &t.RestaurantID, &categoryID, &t.Number,
		&t.Capacity, &t.Shape, &t.Floor, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		t.CategoryID = *categoryID
	}
	return &t, nil
}

func collectTables(rows pgx.Rows) ([]*entity.Table, error) {
	var list []*entity.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
