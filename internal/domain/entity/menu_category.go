package entity

import "time"

// MenuCategory representa una sección del menú de un restaurante.
type MenuCategory struct {
	ID           string
	TenantID     string
	RestaurantID string
	Name         string
	SortOrder    int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
