package ordering

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con un
// OrderRepository atado a la tx (Commit si fn retorna nil, Rollback si no).
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// ReceiptGenerator renderiza el recibo de un pedido (PDF).
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, items []*entity.OrderItem, restaurant *entity.Restaurant) ([]byte, error)
}
