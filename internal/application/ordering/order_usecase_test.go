package ordering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/ordering"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// statusOrderRepo stub de pedidos para las escrituras de estado. Imita la
// semántica del UPDATE atómico: estampa delivered_at / cancelled_at según el
// estado y devuelve 0 filas fuera del alcance del tenant.
type statusOrderRepo struct {
	repository.OrderRepository

	byID map[string]*entity.Order
}

func (s *statusOrderRepo) GetByID(tenantID, id string) (*entity.Order, error) {
	o := s.byID[id]
	if o == nil || o.TenantID != tenantID {
		return nil, nil
	}
	return o, nil
}

func (s *statusOrderRepo) GetItems(orderID string) ([]*entity.OrderItem, error) {
	return nil, nil
}

func (s *statusOrderRepo) UpdateStatus(tenantID, id, status string, at time.Time, cancelReason string) (int64, error) {
	o := s.byID[id]
	if o == nil || o.TenantID != tenantID {
		return 0, nil
	}
	o.Status = status
	o.UpdatedAt = at
	o.DeliveredAt, o.CancelledAt, o.CancelReason = nil, nil, ""
	switch status {
	case entity.OrderDelivered:
		o.DeliveredAt = &at
	case entity.OrderCancelled:
		o.CancelledAt = &at
		o.CancelReason = cancelReason
	}
	return 1, nil
}

func (s *statusOrderRepo) UpdatePaymentStatus(tenantID, id, status string) (int64, error) {
	o := s.byID[id]
	if o == nil || o.TenantID != tenantID {
		return 0, nil
	}
	o.PaymentStatus = status
	return 1, nil
}

func newStatusFixture(t *testing.T) (*ordering.OrderUseCase, *statusOrderRepo) {
	t.Helper()
	repo := &statusOrderRepo{byID: map[string]*entity.Order{
		"order-1": {
			ID:            "order-1",
			TenantID:      testTenant,
			RestaurantID:  testRestaurant,
			OrderNumber:   "ORD-20260829-00001-ABCD",
			Status:        entity.OrderPending,
			PaymentStatus: entity.PaymentPending,
		},
	}}
	return ordering.NewOrderUseCase(repo), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderSetStatus_SaltoDirectoPermitido(t *testing.T) {
	uc, _ := newStatusFixture(t)

	// pending → delivered sin pasar por confirmed/preparing/ready: la
	// escritura es libre dentro del conjunto válido.
	resp, err := uc.SetStatus(testTenant, "order-1", entity.OrderDelivered, "")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.OrderDelivered, resp.Status)
	require.NotNil(t, resp.DeliveredAt)
	assert.Nil(t, resp.CancelledAt)
}

func TestOrderSetStatus_CancelacionEstampaMotivo(t *testing.T) {
	uc, _ := newStatusFixture(t)

	resp, err := uc.SetStatus(testTenant, "order-1", entity.OrderCancelled, "cliente se retiró")
	require.NoError(t, err)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, "cliente se retiró", resp.CancelReason)
	assert.Nil(t, resp.DeliveredAt)
}

func TestOrderSetStatus_EstadoDesconocidoRechazado(t *testing.T) {
	uc, repo := newStatusFixture(t)

	_, err := uc.SetStatus(testTenant, "order-1", "enviado", "")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Equal(t, entity.OrderPending, repo.byID["order-1"].Status,
		"un estado desconocido nunca se coerce a un default")
}

func TestOrderSetStatus_PedidoDeOtroTenantNoExiste(t *testing.T) {
	uc, repo := newStatusFixture(t)

	resp, err := uc.SetStatus("tenant-ajeno", "order-1", entity.OrderConfirmed, "")
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, entity.OrderPending, repo.byID["order-1"].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetPaymentStatus — eje independiente
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderSetPaymentStatus_IndependienteDelEstado(t *testing.T) {
	uc, repo := newStatusFixture(t)

	// Pagar no exige que el pedido esté entregado.
	resp, err := uc.SetPaymentStatus(testTenant, "order-1", entity.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, resp.PaymentStatus)
	assert.Equal(t, entity.OrderPending, repo.byID["order-1"].Status,
		"el estado del pedido no se toca al escribir el pago")
}

func TestOrderSetPaymentStatus_ValorInvalidoRechazado(t *testing.T) {
	uc, _ := newStatusFixture(t)

	_, err := uc.SetPaymentStatus(testTenant, "order-1", "fiado")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
