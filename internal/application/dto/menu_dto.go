package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuCategoryRequest entrada para crear una categoría de menú.
type CreateMenuCategoryRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	SortOrder    int    `json:"sort_order"`
}

// UpdateMenuCategoryRequest entrada para actualizar una categoría de menú.
type UpdateMenuCategoryRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// MenuCategoryResponse salida de una categoría de menú.
type MenuCategoryResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	SortOrder    int       `json:"sort_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateMenuItemRequest entrada para crear un producto del menú.
type CreateMenuItemRequest struct {
	RestaurantID   string          `json:"restaurant_id" validate:"required"`
	CategoryID     string          `json:"category_id" validate:"required"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	TrackInventory bool            `json:"track_inventory"`
	StockQuantity  int             `json:"stock_quantity"`
	MinStockLevel  int             `json:"min_stock_level"`
	SortOrder      int             `json:"sort_order"`
	IsVegetarian   bool            `json:"is_vegetarian"`
	IsVegan        bool            `json:"is_vegan"`
	IsGlutenFree   bool            `json:"is_gluten_free"`
}

// UpdateMenuItemRequest entrada para actualizar un producto (sin stock:
// el stock se muta solo vía la operación de stock).
type UpdateMenuItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	CategoryID    *string          `json:"category_id"`
	MinStockLevel *int             `json:"min_stock_level"`
	SortOrder     *int             `json:"sort_order"`
	IsVegetarian  *bool            `json:"is_vegetarian"`
	IsVegan       *bool            `json:"is_vegan"`
	IsGlutenFree  *bool            `json:"is_gluten_free"`
}

// SetAvailabilityRequest entrada para marcar disponibilidad.
type SetAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// BulkAvailabilityRequest disponibilidad por lotes.
type BulkAvailabilityRequest struct {
	RestaurantID string   `json:"restaurant_id" validate:"required"`
	ItemIDs      []string `json:"item_ids" validate:"required,min=1"`
	IsAvailable  bool     `json:"is_available"`
}

// UpdateStockRequest entrada para fijar el stock de un producto.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// UpdateStockResponse el contrato HTTP devuelve updated=false (no error)
// cuando el producto no maneja control de inventario.
type UpdateStockResponse struct {
	Updated bool `json:"updated"`
}

// MenuItemResponse salida de un producto del menú.
type MenuItemResponse struct {
	ID             string          `json:"id"`
	RestaurantID   string          `json:"restaurant_id"`
	CategoryID     string          `json:"category_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	IsAvailable    bool            `json:"is_available"`
	TrackInventory bool            `json:"track_inventory"`
	StockQuantity  int             `json:"stock_quantity"`
	MinStockLevel  int             `json:"min_stock_level"`
	InStock        bool            `json:"in_stock"`
	LowStock       bool            `json:"low_stock"`
	SortOrder      int             `json:"sort_order"`
	IsVegetarian   bool            `json:"is_vegetarian"`
	IsVegan        bool            `json:"is_vegan"`
	IsGlutenFree   bool            `json:"is_gluten_free"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MenuItemListResponse lista paginada de productos.
type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
