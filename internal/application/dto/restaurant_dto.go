package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessHoursDTO horario de apertura de un día.
type BusinessHoursDTO struct {
	Weekday int    `json:"weekday" validate:"min=0,max=6"`
	Open    string `json:"open"`  // "09:00"
	Close   string `json:"close"` // "22:30"
	Closed  bool   `json:"closed"`
}

// RestaurantSettingsDTO flags operativos.
type RestaurantSettingsDTO struct {
	OnlineOrdering  bool            `json:"online_ordering"`
	DeliveryEnabled bool            `json:"delivery_enabled"`
	MaxDeliveryKM   decimal.Decimal `json:"max_delivery_km"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
}

// CreateRestaurantRequest entrada para crear un restaurante.
type CreateRestaurantRequest struct {
	Name     string                 `json:"name" validate:"required,min=1,max=200"`
	Address  string                 `json:"address"`
	Phone    string                 `json:"phone"`
	Email    string                 `json:"email"`
	Hours    []BusinessHoursDTO     `json:"hours"`
	Settings *RestaurantSettingsDTO `json:"settings"`
}

// UpdateRestaurantRequest entrada para actualizar un restaurante.
type UpdateRestaurantRequest struct {
	Name     *string                `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *string                `json:"address"`
	Phone    *string                `json:"phone"`
	Email    *string                `json:"email"`
	Status   *string                `json:"status"`
	Hours    []BusinessHoursDTO     `json:"hours"`
	Settings *RestaurantSettingsDTO `json:"settings"`
}

// RestaurantResponse salida de un restaurante.
type RestaurantResponse struct {
	ID        string                `json:"id"`
	TenantID  string                `json:"tenant_id"`
	Name      string                `json:"name"`
	Address   string                `json:"address"`
	Phone     string                `json:"phone"`
	Email     string                `json:"email"`
	Status    string                `json:"status"`
	Hours     []BusinessHoursDTO    `json:"hours"`
	Settings  RestaurantSettingsDTO `json:"settings"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// RestaurantListResponse lista paginada de restaurantes.
type RestaurantListResponse struct {
	Items []RestaurantResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
