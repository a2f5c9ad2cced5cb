package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
// Hours y Settings se serializan como JSONB.
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

const restaurantColumns = `id, tenant_id, name, address, phone, email, status, hours, settings, created_at, updated_at, deleted_at`

// Create persiste un restaurante nuevo.
func (r *RestaurantRepo) Create(restaurant *entity.Restaurant) error {
	hours, settings, err := marshalRestaurantJSON(restaurant)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO restaurants (id, tenant_id, name, address, phone, email, status, hours, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		restaurant.ID, restaurant.TenantID, restaurant.Name, restaurant.Address,
		restaurant.Phone, restaurant.Email, restaurant.Status, hours, settings,
		restaurant.CreatedAt, restaurant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante vigente acotado por tenant.
func (r *RestaurantRepo) GetByID(tenantID, id string) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	row := r.q.QueryRow(context.Background(), query, id, tenantID)
	rest, err := scanRestaurant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return rest, nil
}

// Update actualiza un restaurante existente, acotado por tenant.
func (r *RestaurantRepo) Update(restaurant *entity.Restaurant) error {
	hours, settings, err := marshalRestaurantJSON(restaurant)
	if err != nil {
		return err
	}
	query := `
		UPDATE restaurants SET name = $3, address = $4, phone = $5, email = $6,
			status = $7, hours = $8, settings = $9, updated_at = $10
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	_, err = r.q.Exec(context.Background(), query,
		restaurant.ID, restaurant.TenantID, restaurant.Name, restaurant.Address,
		restaurant.Phone, restaurant.Email, restaurant.Status, hours, settings,
		restaurant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

// ListByTenant lista restaurantes del tenant con paginación.
func (r *RestaurantRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants
		WHERE tenant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, rest)
	}
	return list, rows.Err()
}

// SoftDelete marca el restaurante como borrado, acotado por tenant.
func (r *RestaurantRepo) SoftDelete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE restaurants SET deleted_at = now(), updated_at = now() WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`,
		id, tenantID)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return nil
}

func marshalRestaurantJSON(restaurant *entity.Restaurant) (hours, settings []byte, err error) {
	hours, err = json.Marshal(restaurant.Hours)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal hours: %w", err)
	}
	settings, err = json.Marshal(restaurant.Settings)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal settings: %w", err)
	}
	return hours, settings, nil
}

func scanRestaurant(row pgx.Row) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	var hours, settings []byte
	err := row.Scan(&rest.ID, &rest.TenantID, &rest.Name, &rest.Address, &rest.Phone,
		&rest.Email, &rest.Status, &hours, &settings, &rest.CreatedAt, &rest.UpdatedAt, &rest.DeletedAt)
	if err != nil {
		return nil, err
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &rest.Hours); err != nil {
			return nil, fmt.Errorf("unmarshal hours: %w", err)
		}
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &rest.Settings); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	}
	return &rest, nil
}
