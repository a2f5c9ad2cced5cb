// seed puebla la base con datos de demostración: un tenant con suscripción
// vigente, un usuario admin, un restaurante con horario, menú y mesas.
//
// Uso: go run ./cmd/seed
// Credenciales del admin sembrado: admin@demo.resto / demo1234
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Restaurante-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	now := time.Now()
	expires := now.AddDate(1, 0, 0)

	tenant := &entity.Tenant{
		ID:                    uuid.New().String(),
		Name:                  "Grupo Demo Gastronómico",
		Email:                 "demo@resto.pro",
		Phone:                 "+57 300 000 0000",
		Status:                "active",
		SubscriptionStatus:    "active",
		SubscriptionExpiresAt: &expires,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := postgres.NewTenantRepository(pool).Create(tenant); err != nil {
		fail("sembrar tenant: %v", err)
	}

	restaurant := &entity.Restaurant{
		ID:       uuid.New().String(),
		TenantID: tenant.ID,
		Name:     "La Terraza Demo",
		Address:  "Calle 10 # 5-51, Bogotá",
		Phone:    "+57 601 000 0000",
		Email:    "terraza@resto.pro",
		Status:   entity.RestaurantStatusActive,
		Hours:    demoHours(),
		Settings: entity.RestaurantSettings{
			OnlineOrdering:  true,
			DeliveryEnabled: true,
			MaxDeliveryKM:   decimal.NewFromInt(5),
			DeliveryFee:     decimal.NewFromInt(5000),
			TaxRate:         decimal.NewFromFloat(0.08),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := postgres.NewRestaurantRepository(pool).Create(restaurant); err != nil {
		fail("sembrar restaurante: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Email:        "admin@demo.resto",
		PasswordHash: string(hash),
		Name:         "Admin Demo",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := postgres.NewUserRepository(pool).Create(admin); err != nil {
		fail("sembrar admin: %v", err)
	}

	menuCatRepo := postgres.NewMenuCategoryRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	entradas := seedMenuCategory(menuCatRepo, tenant.ID, restaurant.ID, "Entradas", 1, now)
	fuertes := seedMenuCategory(menuCatRepo, tenant.ID, restaurant.ID, "Platos fuertes", 2, now)
	bebidas := seedMenuCategory(menuCatRepo, tenant.ID, restaurant.ID, "Bebidas", 3, now)

	seedMenuItem(menuItemRepo, tenant.ID, restaurant.ID, entradas, "Empanadas (x3)", 9000, false, 0, now)
	seedMenuItem(menuItemRepo, tenant.ID, restaurant.ID, entradas, "Patacones con hogao", 12000, false, 0, now)
	seedMenuItem(menuItemRepo, tenant.ID, restaurant.ID, fuertes, "Bandeja paisa", 32000, false, 0, now)
	seedMenuItem(menuItemRepo, tenant.ID, restaurant.ID, fuertes, "Ajiaco santafereño", 28000, false, 0, now)
	seedMenuItem(menuItemRepo, tenant.ID, restaurant.ID, bebidas, "Limonada de coco", 9000, true, 40, now)
	seedMenuItem(menuItemRepo, tenant.ID, restaurant.ID, bebidas, "Cerveza artesanal", 12000, true, 24, now)

	tableCatRepo := postgres.NewTableCategoryRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	salon := seedTableCategory(tableCatRepo, tenant.ID, restaurant.ID, "Salón", 1, "#2E86AB", now)
	terraza := seedTableCategory(tableCatRepo, tenant.ID, restaurant.ID, "Terraza", 2, "#F18F01", now)

	for i := 1; i <= 6; i++ {
		seedTable(tableRepo, tenant.ID, restaurant.ID, salon, fmt.Sprintf("S-%02d", i), 4, "Piso 1", now)
	}
	for i := 1; i <= 4; i++ {
		seedTable(tableRepo, tenant.ID, restaurant.ID, terraza, fmt.Sprintf("T-%02d", i), 2, "Piso 2", now)
	}

	fmt.Println("datos de demostración sembrados")
	fmt.Println("tenant:", tenant.ID)
	fmt.Println("restaurante:", restaurant.ID)
	fmt.Println("admin: admin@demo.resto / demo1234")
}

func demoHours() []entity.BusinessHours {
	hours := make([]entity.BusinessHours, 0, 7)
	for d := 0; d <= 6; d++ {
		h := entity.BusinessHours{Weekday: d, Open: "12:00", Close: "22:00"}
		if d == 1 { // lunes cerrado
			h.Closed = true
		}
		hours = append(hours, h)
	}
	return hours
}

func seedMenuCategory(repo *postgres.MenuCategoryRepo, tenantID, restaurantID, name string, order int, now time.Time) string {
	c := &entity.MenuCategory{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		RestaurantID: restaurantID,
		Name:         name,
		SortOrder:    order,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(c); err != nil {
		fail("sembrar categoría %s: %v", name, err)
	}
	return c.ID
}

func seedMenuItem(repo *postgres.MenuItemRepo, tenantID, restaurantID, categoryID, name string, price int64, tracked bool, stock int, now time.Time) {
	item := &entity.MenuItem{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		RestaurantID:   restaurantID,
		CategoryID:     categoryID,
		Name:           name,
		Price:          decimal.NewFromInt(price),
		CostPrice:      decimal.NewFromInt(price / 2),
		IsAvailable:    true,
		TrackInventory: tracked,
		StockQuantity:  stock,
		MinStockLevel:  stockMinimum(tracked),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := repo.Create(item); err != nil {
		fail("sembrar producto %s: %v", name, err)
	}
}

func stockMinimum(tracked bool) int {
	if tracked {
		return 5
	}
	return 0
}

func seedTableCategory(repo *postgres.TableCategoryRepo, tenantID, restaurantID, name string, order int, color string, now time.Time) string {
	c := &entity.TableCategory{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		RestaurantID: restaurantID,
		Name:         name,
		SortOrder:    order,
		Color:        color,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(c); err != nil {
		fail("sembrar categoría de mesas %s: %v", name, err)
	}
	return c.ID
}

func seedTable(repo *postgres.TableRepo, tenantID, restaurantID, categoryID, number string, capacity int, floor string, now time.Time) {
	t := &entity.Table{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Number:       number,
		Capacity:     capacity,
		Shape:        "square",
		Floor:        floor,
		Status:       entity.TableAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(t); err != nil {
		fail("sembrar mesa %s: %v", number, err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
