// Package ordering contiene el motor de ciclo de vida de pedidos: creación
// transaccional, escritura de estados y recibos.
package ordering

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	ordernum "github.com/jhoicas/Restaurante-api/internal/domain/order"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// CreateOrderUseCase crea pedidos de forma transaccional: numeración por
// secuencia del tenant + sufijo aleatorio, líneas snapshot y reconciliación
// de montos antes de persistir.
//
// Deliberadamente sin efectos cruzados: crear el pedido no ocupa la mesa ni
// descuenta stock; esa orquestación es del caller.
type CreateOrderUseCase struct {
	txRunner       TxRunner
	restaurantRepo repository.RestaurantRepository
	tableRepo      repository.TableRepository
	itemRepo       repository.MenuItemRepository
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	restaurantRepo repository.RestaurantRepository,
	tableRepo repository.TableRepository,
	itemRepo repository.MenuItemRepository,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:       txRunner,
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		itemRepo:       itemRepo,
	}
}

// Create valida pertenencia (restaurante y productos del tenant, mesa del
// mismo restaurante), reconcilia montos y persiste pedido + líneas en una
// transacción. Ante colisión del número de pedido reintenta con tope duro.
func (uc *CreateOrderUseCase) Create(ctx context.Context, tenantID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.PaymentMethod {
	case entity.PaymentMethodCash, entity.PaymentMethodCard, entity.PaymentMethodTransfer:
	default:
		return nil, domain.ErrInvalidInput
	}

	restaurant, err := uc.restaurantRepo.GetByID(tenantID, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}

	// La mesa debe ser del mismo restaurante: compartir tenant no basta.
	if in.TableID != "" {
		table, err := uc.tableRepo.GetByID(tenantID, in.TableID)
		if err != nil {
			return nil, err
		}
		if table == nil || table.RestaurantID != restaurant.ID {
			return nil, domain.ErrNotFound
		}
	}

	// Todos los productos referenciados deben existir en este restaurante.
	ids := make([]string, 0, len(in.Items))
	for _, l := range in.Items {
		ids = append(ids, l.MenuItemID)
	}
	menuItems, err := uc.itemRepo.GetByIDsForRestaurant(tenantID, in.RestaurantID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}
	for _, l := range in.Items {
		if byID[l.MenuItemID] == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Reconciliación de montos: el precio es snapshot del caller, no se
	// re-deriva del menú; la consistencia interna sí es obligatoria.
	lines := make([]ordernum.LineInput, 0, len(in.Items))
	for _, l := range in.Items {
		lines = append(lines, ordernum.LineInput{Price: l.Price, Quantity: l.Quantity, Total: l.Total})
	}
	if err := ordernum.ValidateTotals(lines, ordernum.Totals{
		Subtotal:    in.Subtotal,
		TaxAmount:   in.TaxAmount,
		DeliveryFee: in.DeliveryFee,
		TotalAmount: in.TotalAmount,
	}); err != nil {
		return nil, err
	}

	var created *entity.Order
	var createdItems []*entity.OrderItem
	for attempt := 0; attempt < ordernum.MaxNumberRetries; attempt++ {
		err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
			now := time.Now()
			seq, err := orderRepo.NextSequence(tenantID)
			if err != nil {
				return err
			}
			suffix, err := ordernum.RandomSuffix()
			if err != nil {
				return err
			}
			order := &entity.Order{
				ID:            uuid.New().String(),
				TenantID:      tenantID,
				RestaurantID:  in.RestaurantID,
				TableID:       in.TableID,
				CustomerID:    in.CustomerID,
				OrderNumber:   ordernum.BuildNumber(now, seq, suffix),
				Status:        entity.OrderPending,
				PaymentStatus: entity.PaymentPending,
				PaymentMethod: in.PaymentMethod,
				Subtotal:      in.Subtotal,
				TaxAmount:     in.TaxAmount,
				DeliveryFee:   in.DeliveryFee,
				TotalAmount:   in.TotalAmount,
				Notes:         in.Notes,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			items := make([]*entity.OrderItem, 0, len(in.Items))
			for _, l := range in.Items {
				items = append(items, &entity.OrderItem{
					ID:         uuid.New().String(),
					OrderID:    order.ID,
					MenuItemID: l.MenuItemID,
					ItemName:   byID[l.MenuItemID].Name,
					Price:      l.Price,
					Quantity:   l.Quantity,
					Total:      l.Total,
					Notes:      l.Notes,
					CreatedAt:  now,
				})
			}
			if err := orderRepo.Create(order); err != nil {
				return err
			}
			if err := orderRepo.CreateItems(items); err != nil {
				return err
			}
			created, createdItems = order, items
			return nil
		})
		if err == nil {
			return toOrderResponse(created, createdItems), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// colisión de order_number: nueva tx, nueva secuencia y sufijo
	}
	return nil, err
}
