package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// qrGenerator produce el PNG del QR de una mesa; lo implementa
// infrastructure/qrcode. nil = endpoint de QR deshabilitado.
type qrGenerator interface {
	TableMenuPNG(restaurantID, tableID string) ([]byte, error)
}

// TableHandler maneja categorías de mesas y mesas (protegido).
type TableHandler struct {
	uc *usecase.TableUseCase
	qr qrGenerator
}

// NewTableHandler construye el handler. qr puede ser nil.
func NewTableHandler(uc *usecase.TableUseCase, qr qrGenerator) *TableHandler {
	return &TableHandler{uc: uc, qr: qr}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory godoc
// @Summary      Crear categoría de mesas
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTableCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.TableCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tables/categories [post]
func (h *TableHandler) CreateCategory(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	var in dto.CreateTableCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RestaurantID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurant_id y name son requeridos"})
	}
	out, err := h.uc.CreateCategory(tenantID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías de mesas de un restaurante
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  true  "ID del restaurante"
// @Success      200  {array}  dto.TableCategoryResponse
// @Router       /api/tables/categories [get]
func (h *TableHandler) ListCategories(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurant_id es requerido"})
	}
	out, err := h.uc.ListCategories(tenantID, restaurantID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateCategory godoc
// @Summary      Actualizar categoría de mesas
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateTableCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TableCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tables/categories/{id} [put]
func (h *TableHandler) UpdateCategory(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	var in dto.UpdateTableCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateCategory(tenantID, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(out)
}

// GetCategoryStats godoc
// @Summary      Agregados recomputados de una categoría de mesas
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.TableCategoryStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tables/categories/{id}/stats [get]
func (h *TableHandler) GetCategoryStats(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	out, err := h.uc.GetCategoryStats(tenantID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ── Mesas ─────────────────────────────────────────────────────────────────────

// CreateTable godoc
// @Summary      Crear mesa
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTableRequest  true  "Datos de la mesa"
// @Success      201   {object}  dto.TableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tables [post]
func (h *TableHandler) CreateTable(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	var in dto.CreateTableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RestaurantID == "" || in.Number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurant_id y number son requeridos"})
	}
	out, err := h.uc.CreateTable(tenantID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTable godoc
// @Summary      Obtener mesa por ID
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la mesa"
// @Success      200  {object}  dto.TableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tables/{id} [get]
func (h *TableHandler) GetTable(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	out, err := h.uc.GetTable(tenantID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mesa no encontrada"})
	}
	return c.JSON(out)
}

// ListTables godoc
// @Summary      Listar mesas de un restaurante
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Param        restaurant_id  query  string  true  "ID del restaurante"
// @Success      200  {array}  dto.TableResponse
// @Router       /api/tables [get]
func (h *TableHandler) ListTables(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurant_id es requerido"})
	}
	out, err := h.uc.ListTables(tenantID, restaurantID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateTable godoc
// @Summary      Actualizar atributos físicos de la mesa (sin estado)
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la mesa"
// @Param        body  body  dto.UpdateTableRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TableResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tables/{id} [put]
func (h *TableHandler) UpdateTable(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	var in dto.UpdateTableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateTable(tenantID, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mesa no encontrada"})
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Escribir el estado de la mesa (cualquier estado sobre cualquier otro)
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la mesa"
// @Param        body  body  dto.SetTableStatusRequest  true  "Estado"
// @Success      200   {object}  dto.TableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tables/{id}/status [put]
func (h *TableHandler) SetStatus(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	var in dto.SetTableStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStatus(tenantID, c.Params("id"), in.Status)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mesa no encontrada"})
	}
	return c.JSON(out)
}

// BulkSetStatus godoc
// @Summary      Estado de mesas por lotes
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkTableStatusRequest  true  "Lote"
// @Success      200   {object}  dto.BulkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tables/status [put]
func (h *TableHandler) BulkSetStatus(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	var in dto.BulkTableStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.TableIDs) == 0 || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "table_ids y status son requeridos"})
	}
	out, err := h.uc.BulkSetStatus(tenantID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteTable godoc
// @Summary      Eliminar mesa (falla con pedidos activos)
// @Tags         tables
// @Security     Bearer
// @Param        id  path  string  true  "ID de la mesa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tables/{id} [delete]
func (h *TableHandler) DeleteTable(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	if err := h.uc.DeleteTable(tenantID, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetQR godoc
// @Summary      PNG del código QR de la mesa (enlaza al menú público)
// @Tags         tables
// @Security     Bearer
// @Produce      png
// @Param        id   path  string  true  "ID de la mesa"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tables/{id}/qr [get]
func (h *TableHandler) GetQR(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tenant_id requerido"})
	}
	if h.qr == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "QR_DISABLED", Message: "generación de QR no configurada"})
	}
	table, err := h.uc.GetTable(tenantID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if table == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mesa no encontrada"})
	}
	png, err := h.qr.TableMenuPNG(table.RestaurantID, table.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
