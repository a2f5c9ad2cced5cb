package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTableCategoryRequest entrada para crear una categoría de mesas.
type CreateTableCategoryRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Description  string `json:"description"`
	SortOrder    int    `json:"sort_order"`
	Color        string `json:"color"`
}

// UpdateTableCategoryRequest entrada para actualizar una categoría de mesas.
type UpdateTableCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	Color       *string `json:"color"`
}

// TableCategoryResponse salida de una categoría de mesas.
type TableCategoryResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	SortOrder    int       `json:"sort_order"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableCategoryStatsResponse agregados recomputados de la categoría.
type TableCategoryStatsResponse struct {
	CategoryID        string          `json:"category_id"`
	TotalTables       int             `json:"total_tables"`
	TotalCapacity     int             `json:"total_capacity"`
	AvailableCapacity int             `json:"available_capacity"`
	ByStatus          map[string]int  `json:"by_status"`
	UtilizationRate   decimal.Decimal `json:"utilization_rate"`
}

// CreateTableRequest entrada para crear una mesa.
type CreateTableRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	CategoryID   string `json:"category_id"`
	Number       string `json:"number" validate:"required,min=1,max=20"`
	Capacity     int    `json:"capacity" validate:"min=1"`
	Shape        string `json:"shape"`
	Floor        string `json:"floor"`
}

// UpdateTableRequest entrada para actualizar una mesa (sin estado: el estado
// se muta solo vía la operación de estado).
type UpdateTableRequest struct {
	CategoryID *string `json:"category_id"`
	Number     *string `json:"number" validate:"omitempty,min=1,max=20"`
	Capacity   *int    `json:"capacity" validate:"omitempty,min=1"`
	Shape      *string `json:"shape"`
	Floor      *string `json:"floor"`
}

// SetTableStatusRequest entrada para escribir el estado de una mesa.
type SetTableStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BulkTableStatusRequest estado por lotes.
type BulkTableStatusRequest struct {
	TableIDs []string `json:"table_ids" validate:"required,min=1"`
	Status   string   `json:"status" validate:"required"`
}

// TableResponse salida de una mesa con sus consultas derivadas.
type TableResponse struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	CategoryID      string    `json:"category_id,omitempty"`
	Number          string    `json:"number"`
	Capacity        int       `json:"capacity"`
	Shape           string    `json:"shape"`
	Floor           string    `json:"floor"`
	Status          string    `json:"status"`
	CanAcceptOrders bool      `json:"can_accept_orders"`
	Busy            bool      `json:"busy"`
	NotAvailable    bool      `json:"not_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
