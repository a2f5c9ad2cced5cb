package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TableCategory agrupa mesas por piso o sección (terraza, salón, barra).
type TableCategory struct {
	ID           string
	TenantID     string
	RestaurantID string
	Name         string
	Description  string
	SortOrder    int
	Color        string // presentación del plano de mesas
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// TableCategoryStats agregados derivados de una categoría. No se almacenan:
// se recomputan en cada llamada sobre las mesas vigentes.
type TableCategoryStats struct {
	TotalTables       int
	TotalCapacity     int
	AvailableCapacity int // capacidad de las mesas en estado available
	ByStatus          map[string]int
	UtilizationRate   decimal.Decimal // % ocupadas-o-reservadas sobre total, 2 decimales
}

// ComputeTableStats recomputa los agregados de un conjunto de mesas.
// La tasa de utilización es busy/total × 100 redondeada a 2 decimales y
// cero cuando no hay mesas.
func ComputeTableStats(tables []*Table) TableCategoryStats {
	stats := TableCategoryStats{ByStatus: make(map[string]int)}
	busy := 0
	for _, t := range tables {
		stats.TotalTables++
		stats.TotalCapacity += t.Capacity
		stats.ByStatus[t.Status]++
		if t.Status == TableAvailable {
			stats.AvailableCapacity += t.Capacity
		}
		if t.Busy() {
			busy++
		}
	}
	if stats.TotalTables == 0 {
		stats.UtilizationRate = decimal.Zero
		return stats
	}
	stats.UtilizationRate = decimal.NewFromInt(int64(busy)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(stats.TotalTables))).
		Round(2)
	return stats
}
