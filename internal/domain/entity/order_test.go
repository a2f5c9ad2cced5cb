package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range entity.OrderStatuses {
		assert.True(t, entity.ValidOrderStatus(s), s)
	}
	assert.False(t, entity.ValidOrderStatus("shipped"))
	assert.False(t, entity.ValidOrderStatus(""))
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range entity.PaymentStatuses {
		assert.True(t, entity.ValidPaymentStatus(s), s)
	}
	assert.False(t, entity.ValidPaymentStatus("chargeback"))
}

func TestOrder_ActiveYTerminal(t *testing.T) {
	activos := map[string]bool{
		entity.OrderPending:   true,
		entity.OrderConfirmed: true,
		entity.OrderPreparing: true,
		entity.OrderReady:     true,
		entity.OrderDelivered: false,
		entity.OrderCancelled: false,
	}
	for status, active := range activos {
		o := &entity.Order{Status: status}
		assert.Equal(t, active, o.Active(), status)
		assert.Equal(t, !active, o.Terminal(), status)
	}
}

// El estado de pago es un eje independiente: un pedido entregado puede
// seguir con pago pendiente y uno cancelado puede quedar pagado (reembolso
// pendiente de gestión manual).
func TestOrder_EstadoYPagoIndependientes(t *testing.T) {
	o := &entity.Order{Status: entity.OrderDelivered, PaymentStatus: entity.PaymentPending}
	assert.True(t, o.Terminal())
	assert.Equal(t, entity.PaymentPending, o.PaymentStatus)

	o = &entity.Order{Status: entity.OrderCancelled, PaymentStatus: entity.PaymentPaid}
	assert.True(t, o.Terminal())
	assert.Equal(t, entity.PaymentPaid, o.PaymentStatus)
}
