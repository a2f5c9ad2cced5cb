package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func TestValidTableStatus(t *testing.T) {
	for _, s := range entity.TableStatuses {
		assert.True(t, entity.ValidTableStatus(s), s)
	}
	assert.False(t, entity.ValidTableStatus("broken"))
	assert.False(t, entity.ValidTableStatus(""))
	assert.False(t, entity.ValidTableStatus("Available"), "la validación es sensible a mayúsculas")
}

func TestTable_ConsultasDerivadas(t *testing.T) {
	cases := []struct {
		status       string
		canOrder     bool
		busy         bool
		notAvailable bool
	}{
		{entity.TableAvailable, true, false, false},
		{entity.TableOccupied, true, true, false},
		{entity.TableReserved, false, true, false},
		{entity.TableOutOfService, false, false, true},
		{entity.TableCleaning, false, false, true},
	}
	for _, c := range cases {
		table := &entity.Table{Status: c.status}
		assert.Equal(t, c.canOrder, table.CanAcceptOrders(), c.status)
		assert.Equal(t, c.busy, table.Busy(), c.status)
		assert.Equal(t, c.notAvailable, table.NotAvailable(), c.status)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTableStats — agregados recomputados, nunca almacenados
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTableStats_SinMesas_UtilizacionCero(t *testing.T) {
	stats := entity.ComputeTableStats(nil)
	assert.Equal(t, 0, stats.TotalTables)
	assert.Equal(t, 0, stats.TotalCapacity)
	assert.True(t, stats.UtilizationRate.IsZero(),
		"categoría vacía reporta 0%, nunca división por cero")
}

func TestComputeTableStats_UtilizacionBusySobreTotal(t *testing.T) {
	tables := []*entity.Table{
		{Status: entity.TableAvailable, Capacity: 4},
		{Status: entity.TableOccupied, Capacity: 2},
		{Status: entity.TableReserved, Capacity: 6},
	}
	stats := entity.ComputeTableStats(tables)

	assert.Equal(t, 3, stats.TotalTables)
	assert.Equal(t, 12, stats.TotalCapacity)
	assert.Equal(t, 4, stats.AvailableCapacity, "solo las mesas available suman capacidad disponible")
	assert.Equal(t, 1, stats.ByStatus[entity.TableOccupied])
	// 2 busy (occupied + reserved) de 3 = 66.67 con 2 decimales
	assert.True(t, stats.UtilizationRate.Equal(decimal.RequireFromString("66.67")),
		"got %s", stats.UtilizationRate)
}

func TestComputeTableStats_LimpiezaYFueraDeServicioNoCuentanComoBusy(t *testing.T) {
	tables := []*entity.Table{
		{Status: entity.TableCleaning, Capacity: 2},
		{Status: entity.TableOutOfService, Capacity: 2},
	}
	stats := entity.ComputeTableStats(tables)
	assert.True(t, stats.UtilizationRate.IsZero())
	assert.Equal(t, 0, stats.AvailableCapacity)
}
