package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// InStock — sin control de inventario es trivialmente true
// ──────────────────────────────────────────────────────────────────────────────

func TestInStock_SinControlDeInventario_SiempreTrue(t *testing.T) {
	item := &entity.MenuItem{TrackInventory: false, StockQuantity: 0}
	assert.True(t, item.InStock(),
		"sin track_inventory el producto siempre está en stock, incluso con cantidad 0")

	item.StockQuantity = -5
	assert.True(t, item.InStock())
}

func TestInStock_ConControl_DependeDeLaCantidad(t *testing.T) {
	item := &entity.MenuItem{TrackInventory: true, StockQuantity: 3}
	assert.True(t, item.InStock())

	item.StockQuantity = 0
	assert.False(t, item.InStock(), "cantidad 0 con control activo = agotado")
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock — requiere control activo Y umbral configurado
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_SinControl_SiempreFalse(t *testing.T) {
	item := &entity.MenuItem{TrackInventory: false, StockQuantity: 0, MinStockLevel: 10}
	assert.False(t, item.LowStock())
}

func TestLowStock_SinUmbral_SiempreFalse(t *testing.T) {
	item := &entity.MenuItem{TrackInventory: true, StockQuantity: 0, MinStockLevel: 0}
	assert.False(t, item.LowStock(),
		"con umbral 0 no hay alerta de stock bajo aunque la cantidad sea 0")
}

func TestLowStock_EnOBajoElUmbral(t *testing.T) {
	item := &entity.MenuItem{TrackInventory: true, StockQuantity: 5, MinStockLevel: 5}
	assert.True(t, item.LowStock(), "cantidad igual al umbral cuenta como stock bajo")

	item.StockQuantity = 6
	assert.False(t, item.LowStock())

	item.StockQuantity = 1
	assert.True(t, item.LowStock())
}

// Disponibilidad y stock son ejes independientes: marcar no disponible no
// toca el stock y viceversa.
func TestDisponibilidadYStock_EjesIndependientes(t *testing.T) {
	item := &entity.MenuItem{IsAvailable: false, TrackInventory: true, StockQuantity: 20}
	assert.True(t, item.InStock(), "no disponible pero con existencias")

	item = &entity.MenuItem{IsAvailable: true, TrackInventory: true, StockQuantity: 0}
	assert.False(t, item.InStock(), "disponible pero agotado")
}
