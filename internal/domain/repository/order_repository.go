package repository

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// Create/CreateItems/NextSequence se usan dentro de la transacción de
// creación de pedido (ver application/ordering); el resto opera sobre el pool.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItems(items []*entity.OrderItem) error
	GetByID(tenantID, id string) (*entity.Order, error)
	GetItems(orderID string) ([]*entity.OrderItem, error)
	ListByRestaurant(tenantID, restaurantID string, limit, offset int) ([]*entity.Order, error)
	// CountActiveByTable cuenta pedidos en estado activo (pending, confirmed,
	// preparing, ready) que referencian la mesa. Guardia de borrado de mesa.
	CountActiveByTable(tenantID, tableID string) (int, error)
	// UpdateStatus escribe el estado en un único UPDATE atómico acotado por
	// id + tenant; estampa delivered_at / cancelled_at según corresponda.
	// Devuelve filas afectadas (0 = fuera del alcance del tenant).
	UpdateStatus(tenantID, id, status string, at time.Time, cancelReason string) (int64, error)
	UpdatePaymentStatus(tenantID, id, status string) (int64, error)
	// NextSequence incrementa y devuelve la secuencia de numeración del tenant.
	NextSequence(tenantID string) (int64, error)
}
