package ordering

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de un pedido.
type ReceiptUseCase struct {
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	generator      ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	restaurantRepo repository.RestaurantRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, restaurantRepo: restaurantRepo, generator: generator}
}

// Generate busca pedido, líneas y restaurante del tenant y renderiza el PDF.
func (uc *ReceiptUseCase) Generate(ctx context.Context, tenantID, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItems(order.ID)
	if err != nil {
		return nil, err
	}
	restaurant, err := uc.restaurantRepo.GetByID(tenantID, order.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceipt(ctx, order, items, restaurant)
}
