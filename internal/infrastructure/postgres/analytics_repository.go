package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de reportería sobre PostgreSQL. Solo lecturas;
// recibe ctx porque algunas agregaciones son pesadas y el caller puede
// querer cancelarlas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de reportería.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// restaurantFilter arma el predicado opcional de restaurante. Los períodos
// son [start, end): el límite superior queda excluido.
const periodFilter = `tenant_id = $1 AND ($2 = '' OR restaurant_id::text = $2) AND created_at >= $3 AND created_at < $4`

// GetRevenueSeries serie diaria de ingresos de pedidos pagados.
func (r *AnalyticsRepo) GetRevenueSeries(ctx context.Context, tenantID, restaurantID string, start, end time.Time) ([]repository.RevenuePoint, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day,
		       COALESCE(SUM(total_amount), 0) AS revenue,
		       COUNT(*) AS order_count
		FROM orders
		WHERE ` + periodFilter + ` AND payment_status = 'paid'
		GROUP BY day
		ORDER BY day ASC`
	rows, err := r.q.Query(ctx, query, tenantID, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("revenue series: %w", err)
	}
	defer rows.Close()
	var series []repository.RevenuePoint
	for rows.Next() {
		var p repository.RevenuePoint
		if err := rows.Scan(&p.Day, &p.Revenue, &p.OrderCount); err != nil {
			return nil, fmt.Errorf("scan revenue point: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// GetRevenueSummary resumen de ingresos del período sobre pedidos pagados.
// AvgOrderValue se calcula con NULLIF para devolver 0 sin pedidos.
func (r *AnalyticsRepo) GetRevenueSummary(ctx context.Context, tenantID, restaurantID string, start, end time.Time) (*repository.RevenueSummary, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0),
		       COUNT(*),
		       COALESCE(ROUND(SUM(total_amount) / NULLIF(COUNT(*), 0), 2), 0)
		FROM orders
		WHERE ` + periodFilter + ` AND payment_status = 'paid'`
	var s repository.RevenueSummary
	err := r.q.QueryRow(ctx, query, tenantID, restaurantID, start, end).
		Scan(&s.Revenue, &s.OrderCount, &s.AvgOrderValue)
	if err != nil {
		return nil, fmt.Errorf("revenue summary: %w", err)
	}
	return &s, nil
}

// GetOverviewMetrics resumen del período sobre TODOS los pedidos, sin filtrar
// por estado de pago. Ver la nota del puerto: la asimetría con
// GetRevenueSummary es intencional.
func (r *AnalyticsRepo) GetOverviewMetrics(ctx context.Context, tenantID, restaurantID string, start, end time.Time) (*repository.RevenueSummary, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0),
		       COUNT(*),
		       COALESCE(ROUND(SUM(total_amount) / NULLIF(COUNT(*), 0), 2), 0)
		FROM orders
		WHERE ` + periodFilter
	var s repository.RevenueSummary
	err := r.q.QueryRow(ctx, query, tenantID, restaurantID, start, end).
		Scan(&s.Revenue, &s.OrderCount, &s.AvgOrderValue)
	if err != nil {
		return nil, fmt.Errorf("overview metrics: %w", err)
	}
	return &s, nil
}

// GetOrderCountsByStatus conteo de pedidos por estado en el período.
func (r *AnalyticsRepo) GetOrderCountsByStatus(ctx context.Context, tenantID, restaurantID string, start, end time.Time) ([]repository.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM orders
		WHERE ` + periodFilter + `
		GROUP BY status
		ORDER BY status ASC`
	rows, err := r.q.Query(ctx, query, tenantID, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("order counts by status: %w", err)
	}
	defer rows.Close()
	var counts []repository.StatusCount
	for rows.Next() {
		var c repository.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// GetPopularItems ranking de productos por unidades vendidas en pedidos
// pagados. Empates: unidades desc, luego ingresos desc, luego id asc para
// un orden determinista.
func (r *AnalyticsRepo) GetPopularItems(ctx context.Context, tenantID, restaurantID string, start, end time.Time, limit int) ([]repository.PopularItem, error) {
	query := `
		SELECT oi.menu_item_id, oi.item_name,
		       SUM(oi.quantity) AS quantity_sold,
		       COALESCE(SUM(oi.total), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.tenant_id = $1 AND ($2 = '' OR o.restaurant_id::text = $2)
		  AND o.created_at >= $3 AND o.created_at < $4
		  AND o.payment_status = 'paid'
		GROUP BY oi.menu_item_id, oi.item_name
		ORDER BY quantity_sold DESC, revenue DESC, oi.menu_item_id ASC
		LIMIT $5`
	rows, err := r.q.Query(ctx, query, tenantID, restaurantID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("popular items: %w", err)
	}
	defer rows.Close()
	var items []repository.PopularItem
	for rows.Next() {
		var p repository.PopularItem
		if err := rows.Scan(&p.MenuItemID, &p.Name, &p.QuantitySold, &p.Revenue); err != nil {
			return nil, fmt.Errorf("scan popular item: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// GetTableUtilization utilización por categoría de mesas sobre el estado
// actual (no histórico). busy = ocupadas o reservadas; la tasa es
// busy/total × 100 redondeada a 2 decimales, 0 si la categoría está vacía.
func (r *AnalyticsRepo) GetTableUtilization(ctx context.Context, tenantID, restaurantID string) ([]repository.CategoryUtilization, error) {
	query := `
		SELECT COALESCE(tc.id::text, ''), COALESCE(tc.name, 'Sin categoría'),
		       COUNT(t.id) AS total_tables,
		       COUNT(t.id) FILTER (WHERE t.status IN ('occupied', 'reserved')) AS busy_tables,
		       COALESCE(SUM(t.capacity), 0) AS total_capacity,
		       COALESCE(ROUND(
		         COUNT(t.id) FILTER (WHERE t.status IN ('occupied', 'reserved'))::numeric * 100
		         / NULLIF(COUNT(t.id), 0), 2), 0) AS utilization_rate
		FROM tables t
		LEFT JOIN table_categories tc ON tc.id = t.category_id AND tc.deleted_at IS NULL
		WHERE t.tenant_id = $1 AND ($2 = '' OR t.restaurant_id::text = $2) AND t.deleted_at IS NULL
		GROUP BY tc.id, tc.name
		ORDER BY COALESCE(tc.name, 'Sin categoría') ASC`
	rows, err := r.q.Query(ctx, query, tenantID, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("table utilization: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryUtilization
	for rows.Next() {
		var u repository.CategoryUtilization
		if err := rows.Scan(&u.CategoryID, &u.CategoryName, &u.TotalTables, &u.BusyTables,
			&u.TotalCapacity, &u.UtilizationRate); err != nil {
			return nil, fmt.Errorf("scan table utilization: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetStaffOrderStats pedidos e ingresos por rol de personal. La atribución
// va por orders.customer_id → users; los pedidos sin usuario asociado
// quedan fuera del reporte.
func (r *AnalyticsRepo) GetStaffOrderStats(ctx context.Context, tenantID, restaurantID string, start, end time.Time) ([]repository.StaffRoleStats, error) {
	query := `
		SELECT u.role,
		       COUNT(DISTINCT u.id) AS user_count,
		       COUNT(o.id) AS order_count,
		       COALESCE(SUM(o.total_amount), 0) AS revenue
		FROM orders o
		JOIN users u ON u.id = o.customer_id AND u.tenant_id = o.tenant_id
		WHERE o.tenant_id = $1 AND ($2 = '' OR o.restaurant_id::text = $2)
		  AND o.created_at >= $3 AND o.created_at < $4
		GROUP BY u.role
		ORDER BY u.role ASC`
	rows, err := r.q.Query(ctx, query, tenantID, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("staff order stats: %w", err)
	}
	defer rows.Close()
	var list []repository.StaffRoleStats
	for rows.Next() {
		var s repository.StaffRoleStats
		if err := rows.Scan(&s.Role, &s.UserCount, &s.OrderCount, &s.Revenue); err != nil {
			return nil, fmt.Errorf("scan staff stats: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
