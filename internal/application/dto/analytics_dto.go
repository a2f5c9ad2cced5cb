package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenuePointDTO punto diario de la serie de ingresos.
type RevenuePointDTO struct {
	Day        time.Time       `json:"day"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"order_count"`
}

// RevenueReportDTO serie + resumen de ingresos de un período (solo pedidos
// con payment_status = paid).
type RevenueReportDTO struct {
	Start         time.Time         `json:"start"`
	End           time.Time         `json:"end"`
	Series        []RevenuePointDTO `json:"series"`
	Revenue       decimal.Decimal   `json:"revenue"`
	OrderCount    int               `json:"order_count"`
	AvgOrderValue decimal.Decimal   `json:"avg_order_value"`
}

// OrderStatsDTO conteos por estado + métricas globales del período (todos
// los pedidos, sin filtro de pago: métrica de overview).
type OrderStatsDTO struct {
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	OrderCount    int             `json:"order_count"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
	ByStatus      map[string]int  `json:"by_status"`
}

// PopularItemDTO producto del ranking de ventas.
type PopularItemDTO struct {
	MenuItemID   string          `json:"menu_item_id"`
	Name         string          `json:"name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// MenuStatsDTO ranking de productos del período.
type MenuStatsDTO struct {
	Start time.Time        `json:"start"`
	End   time.Time        `json:"end"`
	Top   []PopularItemDTO `json:"top"`
}

// CategoryUtilizationDTO utilización de mesas de una categoría.
type CategoryUtilizationDTO struct {
	CategoryID      string          `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	TotalTables     int             `json:"total_tables"`
	BusyTables      int             `json:"busy_tables"`
	TotalCapacity   int             `json:"total_capacity"`
	UtilizationRate decimal.Decimal `json:"utilization_rate"`
}

// TableStatsDTO utilización por categoría + global del restaurante.
type TableStatsDTO struct {
	Categories         []CategoryUtilizationDTO `json:"categories"`
	TotalTables        int                      `json:"total_tables"`
	BusyTables         int                      `json:"busy_tables"`
	OverallUtilization decimal.Decimal          `json:"overall_utilization"`
}

// StaffRoleStatsDTO pedidos e ingresos por rol.
type StaffRoleStatsDTO struct {
	Role       string          `json:"role"`
	UserCount  int             `json:"user_count"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// StaffStatsDTO reporte por roles del período.
type StaffStatsDTO struct {
	Start time.Time           `json:"start"`
	End   time.Time           `json:"end"`
	Roles []StaffRoleStatsDTO `json:"roles"`
}
