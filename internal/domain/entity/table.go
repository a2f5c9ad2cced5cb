package entity

import "time"

// Estados de mesa. No hay grafo de transiciones: cualquier estado puede
// escribirse sobre cualquier otro, solo se valida la pertenencia al conjunto.
const (
	TableAvailable    = "available"
	TableOccupied     = "occupied"
	TableReserved     = "reserved"
	TableOutOfService = "out_of_service"
	TableCleaning     = "cleaning"
)

// TableStatuses conjunto cerrado de estados válidos de mesa.
var TableStatuses = []string{
	TableAvailable, TableOccupied, TableReserved, TableOutOfService, TableCleaning,
}

// ValidTableStatus valida la pertenencia al conjunto de estados de mesa.
func ValidTableStatus(s string) bool {
	for _, v := range TableStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Table representa una unidad de asiento física de un restaurante.
type Table struct {
	ID           string
	TenantID     string
	RestaurantID string
	CategoryID   string // vacío = sin categoría
	Number       string // identificador visible ("M-12")
	Capacity     int
	Shape        string // square, round, rectangle
	Floor        string
	Status       string // ver constantes Table*
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// CanAcceptOrders indica si la mesa admite pedidos: solo available u occupied.
func (t *Table) CanAcceptOrders() bool {
	return t.Status == TableAvailable || t.Status == TableOccupied
}

// Busy indica si la mesa está ocupada o reservada.
func (t *Table) Busy() bool {
	return t.Status == TableOccupied || t.Status == TableReserved
}

// NotAvailable indica si la mesa está fuera de servicio o en limpieza.
func (t *Table) NotAvailable() bool {
	return t.Status == TableOutOfService || t.Status == TableCleaning
}
