package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

const menuStatsTopN = 10 // productos en el ranking por defecto

// StatsCache caché opcional de reportes (TTL corto). nil = sin caché.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// AnalyticsUseCase reportes read-only sobre pedidos, mesas y personal.
// No deriva estado nuevo; todo se computa en el repositorio al momento de
// la llamada. El caché solo acorta la ventana de recomputación.
type AnalyticsUseCase struct {
	repo  repository.AnalyticsRepository
	cache StatsCache
}

// NewAnalyticsUseCase construye el caso de uso. cache puede ser nil.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository, cache StatsCache) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, cache: cache}
}

// GetRevenue devuelve serie diaria + resumen del período, contando solo
// pedidos con payment_status = paid (el endpoint de overview usa otra regla;
// ver GetOrderStats).
func (uc *AnalyticsUseCase) GetRevenue(ctx context.Context, tenantID, restaurantID string, p Period) (*dto.RevenueReportDTO, error) {
	key := fmt.Sprintf("revenue:%s:%s:%d:%d", tenantID, restaurantID, p.Start.Unix(), p.End.Unix())
	if cached, ok := uc.fromCache(ctx, key); ok {
		var out dto.RevenueReportDTO
		if err := json.Unmarshal(cached, &out); err == nil {
			return &out, nil
		}
	}

	series, err := uc.repo.GetRevenueSeries(ctx, tenantID, restaurantID, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	summary, err := uc.repo.GetRevenueSummary(ctx, tenantID, restaurantID, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	out := &dto.RevenueReportDTO{
		Start:         p.Start,
		End:           p.End,
		Series:        make([]dto.RevenuePointDTO, 0, len(series)),
		Revenue:       summary.Revenue,
		OrderCount:    summary.OrderCount,
		AvgOrderValue: summary.AvgOrderValue,
	}
	for _, pt := range series {
		out.Series = append(out.Series, dto.RevenuePointDTO{
			Day: pt.Day, Revenue: pt.Revenue, OrderCount: pt.OrderCount,
		})
	}
	uc.toCache(ctx, key, out)
	return out, nil
}

// GetOrderStats devuelve conteos por estado y las métricas de overview del
// período. El overview suma TODOS los pedidos sin filtrar por estado de
// pago: regla heredada del diseño original, distinta de GetRevenue.
func (uc *AnalyticsUseCase) GetOrderStats(ctx context.Context, tenantID, restaurantID string, p Period) (*dto.OrderStatsDTO, error) {
	overview, err := uc.repo.GetOverviewMetrics(ctx, tenantID, restaurantID, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	counts, err := uc.repo.GetOrderCountsByStatus(ctx, tenantID, restaurantID, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	return &dto.OrderStatsDTO{
		Start:         p.Start,
		End:           p.End,
		TotalRevenue:  overview.Revenue,
		OrderCount:    overview.OrderCount,
		AvgOrderValue: overview.AvgOrderValue,
		ByStatus:      byStatus,
	}, nil
}

// GetMenuStats ranking de productos por unidades vendidas en pedidos
// pagados; empates por ingresos desc y luego por ID asc (determinista).
func (uc *AnalyticsUseCase) GetMenuStats(ctx context.Context, tenantID, restaurantID string, p Period) (*dto.MenuStatsDTO, error) {
	items, err := uc.repo.GetPopularItems(ctx, tenantID, restaurantID, p.Start, p.End, menuStatsTopN)
	if err != nil {
		return nil, err
	}
	out := &dto.MenuStatsDTO{Start: p.Start, End: p.End, Top: make([]dto.PopularItemDTO, 0, len(items))}
	for _, it := range items {
		out.Top = append(out.Top, dto.PopularItemDTO{
			MenuItemID:   it.MenuItemID,
			Name:         it.Name,
			QuantitySold: it.QuantitySold,
			Revenue:      it.Revenue,
		})
	}
	return out, nil
}

// GetTableStats utilización actual de mesas por categoría y global.
func (uc *AnalyticsUseCase) GetTableStats(ctx context.Context, tenantID, restaurantID string) (*dto.TableStatsDTO, error) {
	categories, err := uc.repo.GetTableUtilization(ctx, tenantID, restaurantID)
	if err != nil {
		return nil, err
	}
	out := &dto.TableStatsDTO{Categories: make([]dto.CategoryUtilizationDTO, 0, len(categories))}
	for _, c := range categories {
		out.Categories = append(out.Categories, dto.CategoryUtilizationDTO{
			CategoryID:      c.CategoryID,
			CategoryName:    c.CategoryName,
			TotalTables:     c.TotalTables,
			BusyTables:      c.BusyTables,
			TotalCapacity:   c.TotalCapacity,
			UtilizationRate: c.UtilizationRate,
		})
		out.TotalTables += c.TotalTables
		out.BusyTables += c.BusyTables
	}
	if out.TotalTables == 0 {
		out.OverallUtilization = decimal.Zero
		return out, nil
	}
	out.OverallUtilization = decimal.NewFromInt(int64(out.BusyTables)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(out.TotalTables))).
		Round(2)
	return out, nil
}

// GetStaffStats pedidos e ingresos atribuidos por rol del personal.
func (uc *AnalyticsUseCase) GetStaffStats(ctx context.Context, tenantID, restaurantID string, p Period) (*dto.StaffStatsDTO, error) {
	roles, err := uc.repo.GetStaffOrderStats(ctx, tenantID, restaurantID, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	out := &dto.StaffStatsDTO{Start: p.Start, End: p.End, Roles: make([]dto.StaffRoleStatsDTO, 0, len(roles))}
	for _, r := range roles {
		out.Roles = append(out.Roles, dto.StaffRoleStatsDTO{
			Role:       r.Role,
			UserCount:  r.UserCount,
			OrderCount: r.OrderCount,
			Revenue:    r.Revenue,
		})
	}
	return out, nil
}

// fromCache lee el caché si existe; los errores de caché no interrumpen.
func (uc *AnalyticsUseCase) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if uc.cache == nil {
		return nil, false
	}
	val, ok, err := uc.cache.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	return val, true
}

// toCache guarda el reporte serializado; el fallo de caché se ignora.
func (uc *AnalyticsUseCase) toCache(ctx context.Context, key string, v any) {
	if uc.cache == nil {
		return
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = uc.cache.Set(ctx, key, buf)
}
