package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un producto orderable del menú.
//
// Disponibilidad y stock son ejes independientes: un producto puede estar
// marcado no disponible con stock, o disponible sin control de inventario.
// El stock solo se muta por operaciones explícitas de stock, nunca como
// efecto secundario de crear un pedido.
type MenuItem struct {
	ID             string
	TenantID       string
	RestaurantID   string
	CategoryID     string
	Name           string
	Description    string
	Price          decimal.Decimal
	CostPrice      decimal.Decimal
	IsAvailable    bool
	TrackInventory bool
	StockQuantity  int
	MinStockLevel  int // 0 = sin umbral configurado
	SortOrder      int
	IsVegetarian   bool
	IsVegan        bool
	IsGlutenFree   bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // soft delete; el historial de pedidos lo sigue referenciando
}

// InStock indica si hay existencias. Sin control de inventario es
// trivialmente true.
func (m *MenuItem) InStock() bool {
	if !m.TrackInventory {
		return true
	}
	return m.StockQuantity > 0
}

// LowStock indica si el stock está en o por debajo del umbral mínimo.
// Requiere control de inventario activo y umbral configurado; si no, false.
func (m *MenuItem) LowStock() bool {
	if !m.TrackInventory || m.MinStockLevel <= 0 {
		return false
	}
	return m.StockQuantity <= m.MinStockLevel
}
