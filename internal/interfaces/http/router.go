package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/ordering"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TenantUC    *usecase.TenantUseCase
	AuthUC      *auth.AuthUseCase
	RestoUC     *usecase.RestaurantUseCase
	MenuUC      *usecase.MenuUseCase
	TableUC     *usecase.TableUseCase
	CreateOrder *ordering.CreateOrderUseCase
	OrderUC     *ordering.OrderUseCase
	ReceiptUC   *ordering.ReceiptUseCase
	AnalyticsUC *analytics.AnalyticsUseCase
	TenantCheck tenantChecker // repositorio de tenants para la guardia de suscripción
	QR          qrGenerator   // puede ser nil
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y signup (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	tenantHandler := NewTenantHandler(deps.TenantUC)
	api.Post("/tenants", tenantHandler.Create)

	// Rutas protegidas: Bearer Token + suscripción vigente del tenant
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), SubscriptionMiddleware(deps.TenantCheck))

	// Tenant autenticado
	protected.Get("/tenants/me", tenantHandler.GetMe)
	protected.Put("/tenants/me/subscription", RequireRole(entity.RoleAdmin), tenantHandler.UpdateSubscription)

	// Restaurants (protegido; mutaciones solo admin/manager)
	manage := RequireRole(entity.RoleAdmin, entity.RoleManager)
	restaurants := protected.Group("/restaurants")
	restoHandler := NewRestaurantHandler(deps.RestoUC)
	restaurants.Post("/", manage, restoHandler.Create)
	restaurants.Get("/", restoHandler.List)
	restaurants.Get("/:id", restoHandler.GetByID)
	restaurants.Put("/:id", manage, restoHandler.Update)
	restaurants.Delete("/:id", manage, restoHandler.Delete)

	// Menu (protegido). Disponibilidad y stock quedan abiertos a todo el
	// personal: cocina marca agotados sin pasar por un manager.
	menu := protected.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Post("/categories", manage, menuHandler.CreateCategory)
	menu.Get("/categories", menuHandler.ListCategories)
	menu.Put("/categories/:id", manage, menuHandler.UpdateCategory)
	menu.Delete("/categories/:id", manage, menuHandler.DeleteCategory)
	menu.Post("/items", manage, menuHandler.CreateItem)
	menu.Get("/items", menuHandler.ListItems)
	menu.Put("/items/availability", menuHandler.BulkSetAvailability)
	menu.Get("/items/:id", menuHandler.GetItem)
	menu.Put("/items/:id", manage, menuHandler.UpdateItem)
	menu.Delete("/items/:id", manage, menuHandler.DeleteItem)
	menu.Put("/items/:id/availability", menuHandler.SetAvailability)
	menu.Put("/items/:id/stock", menuHandler.SetStock)

	// Tables (protegido; el estado lo escribe cualquier rol)
	tables := protected.Group("/tables")
	tableHandler := NewTableHandler(deps.TableUC, deps.QR)
	tables.Post("/categories", manage, tableHandler.CreateCategory)
	tables.Get("/categories", tableHandler.ListCategories)
	tables.Put("/categories/:id", manage, tableHandler.UpdateCategory)
	tables.Get("/categories/:id/stats", tableHandler.GetCategoryStats)
	tables.Post("/", manage, tableHandler.CreateTable)
	tables.Get("/", tableHandler.ListTables)
	tables.Put("/status", tableHandler.BulkSetStatus)
	tables.Get("/:id", tableHandler.GetTable)
	tables.Put("/:id", manage, tableHandler.UpdateTable)
	tables.Delete("/:id", manage, tableHandler.DeleteTable)
	tables.Put("/:id/status", tableHandler.SetStatus)
	tables.Get("/:id/qr", tableHandler.GetQR)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderUC, deps.ReceiptUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.SetStatus)
	orders.Put("/:id/payment-status", orderHandler.SetPaymentStatus)
	orders.Get("/:id/receipt", orderHandler.GetReceipt)

	// Analytics (protegido; solo admin/manager ven cifras)
	reports := protected.Group("/analytics", manage)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	reports.Get("/revenue", analyticsHandler.Revenue)
	reports.Get("/orders", analyticsHandler.OrderStats)
	reports.Get("/menu", analyticsHandler.MenuStats)
	reports.Get("/tables", analyticsHandler.TableStats)
	reports.Get("/staff", analyticsHandler.StaffStats)
}
