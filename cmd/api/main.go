package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/ordering"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	infracache "github.com/jhoicas/Restaurante-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	infraqr "github.com/jhoicas/Restaurante-api/internal/infrastructure/qrcode"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	menuCategoryRepo := postgres.NewMenuCategoryRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	tableCategoryRepo := postgres.NewTableCategoryRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de reportes — opcional: sin REDIS_ADDR todo va directo a la DB.
	var statsCache analytics.StatsCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rc := infracache.NewRedisCache(rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis inaccesible, reportes sin caché")
		} else {
			statsCache = rc
		}
	}

	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	restaurantUC := usecase.NewRestaurantUseCase(restaurantRepo)
	menuUC := usecase.NewMenuUseCase(menuCategoryRepo, menuItemRepo, restaurantRepo)
	tableUC := usecase.NewTableUseCase(tableRepo, tableCategoryRepo, orderRepo, restaurantRepo)
	createOrderUC := ordering.NewCreateOrderUseCase(txRunner, restaurantRepo, tableRepo, menuItemRepo)
	orderUC := ordering.NewOrderUseCase(orderRepo)
	receiptUC := ordering.NewReceiptUseCase(orderRepo, restaurantRepo, infrapdf.NewMarotoReceiptGenerator())
	analyticsUC := analytics.NewAnalyticsUseCase(analyticsRepo, statsCache)
	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	qrGen := infraqr.NewGenerator(cfg.Menu.PublicBaseURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Resto Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TenantUC:    tenantUC,
		AuthUC:      authUC,
		RestoUC:     restaurantUC,
		MenuUC:      menuUC,
		TableUC:     tableUC,
		CreateOrder: createOrderUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		AnalyticsUC: analyticsUC,
		TenantCheck: tenantRepo,
		QR:          qrGen,
		JWTSecret:   cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
