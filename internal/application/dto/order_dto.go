package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de pedido: precio snapshot suministrado por el
// caller y total que debe cumplir total = price × quantity exacto.
type OrderLineRequest struct {
	MenuItemID string          `json:"menu_item_id" validate:"required"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity" validate:"min=1"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes"`
}

// CreateOrderRequest entrada para crear un pedido. Los montos los declara el
// caller y deben reconciliar (subtotal = Σ líneas; total = subtotal + tax +
// delivery); la violación se rechaza antes de persistir.
type CreateOrderRequest struct {
	RestaurantID  string             `json:"restaurant_id" validate:"required"`
	TableID       string             `json:"table_id"`
	CustomerID    string             `json:"customer_id"`
	Items         []OrderLineRequest `json:"items" validate:"required,min=1"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxAmount     decimal.Decimal    `json:"tax_amount"`
	DeliveryFee   decimal.Decimal    `json:"delivery_fee"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
	Notes         string             `json:"notes"`
}

// SetOrderStatusRequest entrada para escribir el estado del pedido.
type SetOrderStatusRequest struct {
	Status       string `json:"status" validate:"required"`
	CancelReason string `json:"cancel_reason"`
}

// SetPaymentStatusRequest entrada para escribir el estado de pago.
type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// OrderItemResponse línea de pedido persistida.
type OrderItemResponse struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menu_item_id"`
	ItemName   string          `json:"item_name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	RestaurantID  string              `json:"restaurant_id"`
	TableID       string              `json:"table_id,omitempty"`
	CustomerID    string              `json:"customer_id,omitempty"`
	OrderNumber   string              `json:"order_number"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	PaymentMethod string              `json:"payment_method"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	TaxAmount     decimal.Decimal     `json:"tax_amount"`
	DeliveryFee   decimal.Decimal     `json:"delivery_fee"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Notes         string              `json:"notes,omitempty"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	DeliveredAt   *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt   *time.Time          `json:"cancelled_at,omitempty"`
	CancelReason  string              `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
