package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func activeTenant(expires *time.Time) *entity.Tenant {
	return &entity.Tenant{
		Status:                entity.TenantStatusActive,
		SubscriptionStatus:    entity.SubscriptionActive,
		SubscriptionExpiresAt: expires,
	}
}

func TestCanOperate_TenantVigente(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)

	assert.True(t, activeTenant(&future).CanOperate(now))
	assert.True(t, activeTenant(nil).CanOperate(now), "sin vencimiento = opera indefinidamente")
}

func TestCanOperate_SuscripcionVencida(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	assert.False(t, activeTenant(&past).CanOperate(now))

	// El instante exacto de vencimiento ya no opera.
	assert.False(t, activeTenant(&now).CanOperate(now))
}

func TestCanOperate_EstadosBloqueantes(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)

	suspendido := activeTenant(&future)
	suspendido.SubscriptionStatus = entity.SubscriptionSuspended
	assert.False(t, suspendido.CanOperate(now))

	cancelado := activeTenant(&future)
	cancelado.SubscriptionStatus = entity.SubscriptionCancelled
	assert.False(t, cancelado.CanOperate(now))

	inactivo := activeTenant(&future)
	inactivo.Status = entity.TenantStatusInactive
	assert.False(t, inactivo.CanOperate(now))

	borrado := activeTenant(&future)
	borrado.DeletedAt = &now
	assert.False(t, borrado.CanOperate(now))
}
