package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RevenuePoint punto de la serie de ingresos (agrupación por día).
type RevenuePoint struct {
	Day        time.Time
	Revenue    decimal.Decimal
	OrderCount int
}

// RevenueSummary resumen de ingresos de un período. AvgOrderValue es 0
// (nunca NaN) cuando no hay pedidos.
type RevenueSummary struct {
	Revenue       decimal.Decimal
	OrderCount    int
	AvgOrderValue decimal.Decimal
}

// StatusCount conteo de pedidos por estado.
type StatusCount struct {
	Status string
	Count  int
}

// PopularItem producto rankeado por unidades vendidas en pedidos pagados.
type PopularItem struct {
	MenuItemID   string
	Name         string
	QuantitySold int64
	Revenue      decimal.Decimal
}

// CategoryUtilization utilización de mesas por categoría.
type CategoryUtilization struct {
	CategoryID      string
	CategoryName    string
	TotalTables     int
	BusyTables      int // ocupadas o reservadas
	TotalCapacity   int
	UtilizationRate decimal.Decimal // %, 2 decimales, 0 si no hay mesas
}

// StaffRoleStats pedidos e ingresos atribuidos por rol de personal.
type StaffRoleStats struct {
	Role       string
	UserCount  int
	OrderCount int
	Revenue    decimal.Decimal
}

// AnalyticsRepository consultas read-only de reportería. No deriva estado
// nuevo: todo se computa sobre orders/order_items/tables al momento de la
// llamada. restaurantID vacío = todo el tenant.
//
// Nota sobre el filtro de pago: GetOverviewMetrics suma TODOS los pedidos
// del período mientras que GetRevenueSeries/GetRevenueSummary filtran
// payment_status = 'paid'. La asimetría viene del diseño original y se
// conserva a propósito; unificarla cambiaría las cifras de los reportes.
type AnalyticsRepository interface {
	GetRevenueSeries(ctx context.Context, tenantID, restaurantID string, start, end time.Time) ([]RevenuePoint, error)
	GetRevenueSummary(ctx context.Context, tenantID, restaurantID string, start, end time.Time) (*RevenueSummary, error)
	GetOverviewMetrics(ctx context.Context, tenantID, restaurantID string, start, end time.Time) (*RevenueSummary, error)
	GetOrderCountsByStatus(ctx context.Context, tenantID, restaurantID string, start, end time.Time) ([]StatusCount, error)
	GetPopularItems(ctx context.Context, tenantID, restaurantID string, start, end time.Time, limit int) ([]PopularItem, error)
	GetTableUtilization(ctx context.Context, tenantID, restaurantID string) ([]CategoryUtilization, error)
	GetStaffOrderStats(ctx context.Context, tenantID, restaurantID string, start, end time.Time) ([]StaffRoleStats, error)
}
