package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido. El flujo esperado es pending → confirmed → preparing →
// ready → delivered, con cancelled alcanzable desde cualquier estado no
// terminal, pero el modelo no impone un grafo: la validación es solo de
// pertenencia al conjunto. delivered y cancelled son terminales para la
// analítica (un pedido en esos estados deja de contar como activo).
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Estados de pago: eje independiente del estado del pedido. Un pedido puede
// estar delivered con pago pending.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// OrderStatuses conjunto cerrado de estados de pedido.
var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled,
}

// PaymentStatuses conjunto cerrado de estados de pago.
var PaymentStatuses = []string{
	PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded,
}

// ActiveOrderStatuses estados que bloquean el borrado de la mesa asociada.
var ActiveOrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
}

// ValidOrderStatus valida la pertenencia al conjunto de estados de pedido.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidPaymentStatus valida la pertenencia al conjunto de estados de pago.
func ValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Métodos de pago aceptados en la creación del pedido.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// Order representa un pedido de cliente. Invariantes monetarios:
// Subtotal = Σ totales de sus líneas; TotalAmount = Subtotal + TaxAmount +
// DeliveryFee. Se validan antes de persistir, nunca después.
//
// El pedido no toca el estado de su mesa: entregar o cancelar no libera la
// mesa, eso lo orquesta el caller.
type Order struct {
	ID            string
	TenantID      string
	RestaurantID  string
	TableID       string // vacío = pedido sin mesa (delivery/takeout)
	CustomerID    string // vacío = cliente no registrado
	OrderNumber   string // código único legible, ver domain/order
	Status        string // ver constantes Order*
	PaymentStatus string // ver constantes Payment*
	PaymentMethod string
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	DeliveryFee   decimal.Decimal
	TotalAmount   decimal.Decimal
	Notes         string
	DeliveredAt   *time.Time
	CancelledAt   *time.Time
	CancelReason  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Active indica si el pedido aún bloquea recursos (mesa): no terminal.
func (o *Order) Active() bool {
	for _, s := range ActiveOrderStatuses {
		if o.Status == s {
			return true
		}
	}
	return false
}

// Terminal indica si el pedido alcanzó un estado final.
func (o *Order) Terminal() bool {
	return o.Status == OrderDelivered || o.Status == OrderCancelled
}

// OrderItem línea de pedido: snapshot de precio y nombre del producto al
// momento de ordenar, independiente de cambios posteriores del menú.
// Invariante: Total = Price × Quantity exacto (aritmética decimal).
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	ItemName   string
	Price      decimal.Decimal
	Quantity   int
	Total      decimal.Decimal
	Notes      string
	CreatedAt  time.Time
}
