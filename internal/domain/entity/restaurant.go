package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del restaurante.
const (
	RestaurantStatusActive   = "active"
	RestaurantStatusInactive = "inactive"
)

// BusinessHours horario de un día de la semana.
// Weekday sigue time.Weekday (0 = domingo). Open/Close en formato "15:04";
// Closed true = no abre ese día. Se persiste como JSONB.
type BusinessHours struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open"`
	Close   string `json:"close"`
	Closed  bool   `json:"closed"`
}

// RestaurantSettings flags operativos del restaurante. Se persiste como JSONB.
type RestaurantSettings struct {
	OnlineOrdering  bool            `json:"online_ordering"`
	DeliveryEnabled bool            `json:"delivery_enabled"`
	MaxDeliveryKM   decimal.Decimal `json:"max_delivery_km"` // 0 = sin límite
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	TaxRate         decimal.Decimal `json:"tax_rate"` // ej. 0.08
}

// Restaurant representa una sede física bajo un tenant. Todas sus entidades
// hijas (categorías, productos, mesas, pedidos) deben cargar el mismo TenantID.
type Restaurant struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, inactive
	Hours     []BusinessHours
	Settings  RestaurantSettings
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsOpenAt indica si el restaurante atiende en el instante dado según su horario.
// Sin horario configurado para el día se asume cerrado.
func (r *Restaurant) IsOpenAt(t time.Time) bool {
	for _, h := range r.Hours {
		if h.Weekday != int(t.Weekday()) || h.Closed {
			continue
		}
		hhmm := t.Format("15:04")
		return h.Open <= hhmm && hhmm < h.Close
	}
	return false
}
