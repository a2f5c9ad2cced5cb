package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Construido sobre el pool para lecturas y mutaciones de estado; la creación
// de pedidos lo instancia sobre una tx vía TxRunner.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, tenant_id, restaurant_id, table_id, customer_id, order_number,
	status, payment_status, payment_method, subtotal, tax_amount, delivery_fee, total_amount,
	notes, delivered_at, cancelled_at, cancel_reason, created_at, updated_at`

// Create persiste la cabecera del pedido. El índice único de order_number
// por tenant convierte una colisión de numeración en domain.ErrDuplicate,
// que el caso de uso reintenta con otro sufijo.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, tenant_id, restaurant_id, table_id, customer_id, order_number,
			status, payment_status, payment_method, subtotal, tax_amount, delivery_fee, total_amount,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TenantID, order.RestaurantID, order.TableID, order.CustomerID,
		order.OrderNumber, order.Status, order.PaymentStatus, order.PaymentMethod,
		order.Subtotal, order.TaxAmount, order.DeliveryFee, order.TotalAmount,
		order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItems persiste las líneas del pedido en la misma transacción que la cabecera.
func (r *OrderRepo) CreateItems(items []*entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, menu_item_id, item_name, price, quantity, total, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			it.ID, it.OrderID, it.MenuItemID, it.ItemName, it.Price, it.Quantity,
			it.Total, it.Notes, it.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido acotado por tenant.
func (r *OrderRepo) GetByID(tenantID, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND tenant_id = $2`
	row := r.q.QueryRow(context.Background(), query, id, tenantID)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetItems obtiene las líneas de un pedido.
func (r *OrderRepo) GetItems(orderID string) ([]*entity.OrderItem, error) {
	query := `SELECT id, order_id, menu_item_id, item_name, price, quantity, total, notes, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.ItemName, &it.Price,
			&it.Quantity, &it.Total, &it.Notes, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByRestaurant lista pedidos del restaurante, más recientes primero.
func (r *OrderRepo) ListByRestaurant(tenantID, restaurantID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE tenant_id = $1 AND restaurant_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, restaurantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// CountActiveByTable cuenta pedidos activos que referencian la mesa.
func (r *OrderRepo) CountActiveByTable(tenantID, tableID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE tenant_id = $1 AND table_id = $2 AND status = ANY($3)`,
		tenantID, tableID, entity.ActiveOrderStatuses).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active orders: %w", err)
	}
	return count, nil
}

// UpdateStatus escribe el estado en un único UPDATE atómico acotado por
// id + tenant. delivered estampa delivered_at; cancelled estampa
// cancelled_at y cancel_reason. Volver a un estado no terminal limpia ambos.
func (r *OrderRepo) UpdateStatus(tenantID, id, status string, at time.Time, cancelReason string) (int64, error) {
	query := `
		UPDATE orders SET status = $3,
			delivered_at  = CASE WHEN $3 = 'delivered' THEN $4 ELSE NULL END,
			cancelled_at  = CASE WHEN $3 = 'cancelled' THEN $4 ELSE NULL END,
			cancel_reason = CASE WHEN $3 = 'cancelled' THEN $5 ELSE '' END,
			updated_at = $4
		WHERE id = $1 AND tenant_id = $2`
	tag, err := r.q.Exec(context.Background(), query, id, tenantID, status, at, cancelReason)
	if err != nil {
		return 0, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdatePaymentStatus escribe el estado de pago, eje independiente del estado del pedido.
func (r *OrderRepo) UpdatePaymentStatus(tenantID, id, status string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE orders SET payment_status = $3, updated_at = now() WHERE id = $1 AND tenant_id = $2`,
		id, tenantID, status)
	if err != nil {
		return 0, fmt.Errorf("update payment status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// NextSequence incrementa y devuelve la secuencia de numeración del tenant.
// Upsert atómico: el primer pedido del tenant crea la fila en 1.
func (r *OrderRepo) NextSequence(tenantID string) (int64, error) {
	var seq int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO order_sequences (tenant_id, seq) VALUES ($1, 1)
		 ON CONFLICT (tenant_id) DO UPDATE SET seq = order_sequences.seq + 1
		 RETURNING seq`,
		tenantID).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next order sequence: %w", err)
	}
	return seq, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var tableID, customerID *string
	err := row.Scan(&o.ID, &o.TenantID, &o.RestaurantID, &tableID, &customerID, &o.OrderNumber,
		&o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.Subtotal, &o.TaxAmount,
		&o.DeliveryFee, &o.TotalAmount, &o.Notes, &o.DeliveredAt, &o.CancelledAt,
		&o.CancelReason, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if tableID != nil {
		o.TableID = *tableID
	}
	if customerID != nil {
		o.CustomerID = *customerID
	}
	return &o, nil
}
