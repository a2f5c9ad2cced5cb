package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
)

// AnalyticsHandler reportes read-only (protegido).
type AnalyticsHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// periodFromQuery resuelve el período [start, end) desde query params:
// start/end RFC3339 explícitos o preset (today, month, last7days,
// last30days). Sin nada, last30days.
func periodFromQuery(c *fiber.Ctx) (analytics.Period, error) {
	return analytics.ResolvePeriod(c.Query("start"), c.Query("end"), c.Query("preset"), time.Now())
}

// Revenue godoc
// @Summary      Serie diaria + resumen de ingresos (solo pedidos pagados)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "ID del restaurante (vacío = todo el tenant)"
// @Param        preset         query  string  false  "today | month | last7days | last30days"
// @Param        start          query  string  false  "RFC3339"
// @Param        end            query  string  false  "RFC3339 (exclusivo)"
// @Success      200  {object}  dto.RevenueReportDTO
// @Router       /api/analytics/revenue [get]
func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	p, err := periodFromQuery(c)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.GetRevenue(c.Context(), tenantID, c.Query("restaurant_id"), p)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// OrderStats godoc
// @Summary      Conteos por estado + métricas de overview (todos los pedidos)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "ID del restaurante"
// @Param        preset         query  string  false  "today | month | last7days | last30days"
// @Success      200  {object}  dto.OrderStatsDTO
// @Router       /api/analytics/orders [get]
func (h *AnalyticsHandler) OrderStats(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	p, err := periodFromQuery(c)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.GetOrderStats(c.Context(), tenantID, c.Query("restaurant_id"), p)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MenuStats godoc
// @Summary      Ranking de productos vendidos (pedidos pagados)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "ID del restaurante"
// @Param        preset         query  string  false  "today | month | last7days | last30days"
// @Success      200  {object}  dto.MenuStatsDTO
// @Router       /api/analytics/menu [get]
func (h *AnalyticsHandler) MenuStats(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	p, err := periodFromQuery(c)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.GetMenuStats(c.Context(), tenantID, c.Query("restaurant_id"), p)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// TableStats godoc
// @Summary      Utilización de mesas por categoría (estado actual)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "ID del restaurante"
// @Success      200  {object}  dto.TableStatsDTO
// @Router       /api/analytics/tables [get]
func (h *AnalyticsHandler) TableStats(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	out, err := h.uc.GetTableStats(c.Context(), tenantID, c.Query("restaurant_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// StaffStats godoc
// @Summary      Pedidos e ingresos por rol de personal
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  false  "ID del restaurante"
// @Param        preset         query  string  false  "today | month | last7days | last30days"
// @Success      200  {object}  dto.StaffStatsDTO
// @Router       /api/analytics/staff [get]
func (h *AnalyticsHandler) StaffStats(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	p, err := periodFromQuery(c)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.GetStaffStats(c.Context(), tenantID, c.Query("restaurant_id"), p)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
