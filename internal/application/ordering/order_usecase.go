package ordering

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// OrderUseCase consultas y escritura de estados de pedidos. Las escrituras
// de estado son UPDATEs atómicos acotados por id + tenant, sin efectos
// cruzados (entregar no libera la mesa, cancelar no repone stock).
type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

// GetByID obtiene un pedido del tenant con sus líneas.
func (uc *OrderUseCase) GetByID(tenantID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.orderRepo.GetItems(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// List lista los pedidos de un restaurante con paginación (sin líneas).
func (uc *OrderUseCase) List(tenantID, restaurantID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByRestaurant(tenantID, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, o := range list {
		out.Items = append(out.Items, *toOrderResponse(o, nil))
	}
	return out, nil
}

// SetStatus escribe el estado del pedido. Cualquier valor del conjunto es
// aceptado desde cualquier estado (sin grafo); los valores desconocidos se
// rechazan con ErrInvalidStatus, nunca se coercen a un default.
func (uc *OrderUseCase) SetStatus(tenantID, id, status, cancelReason string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	rows, err := uc.orderRepo.UpdateStatus(tenantID, id, status, time.Now(), cancelReason)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, nil
	}
	return uc.GetByID(tenantID, id)
}

// SetPaymentStatus escribe el estado de pago: eje independiente del estado
// del pedido, sin acoplamiento entre ambos.
func (uc *OrderUseCase) SetPaymentStatus(tenantID, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	rows, err := uc.orderRepo.UpdatePaymentStatus(tenantID, id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, nil
	}
	return uc.GetByID(tenantID, id)
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:            o.ID,
		RestaurantID:  o.RestaurantID,
		TableID:       o.TableID,
		CustomerID:    o.CustomerID,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		Subtotal:      o.Subtotal,
		TaxAmount:     o.TaxAmount,
		DeliveryFee:   o.DeliveryFee,
		TotalAmount:   o.TotalAmount,
		Notes:         o.Notes,
		DeliveredAt:   o.DeliveredAt,
		CancelledAt:   o.CancelledAt,
		CancelReason:  o.CancelReason,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			ItemName:   it.ItemName,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Total:      it.Total,
			Notes:      it.Notes,
		})
	}
	return out
}
