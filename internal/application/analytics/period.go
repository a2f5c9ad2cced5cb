// Package analytics contiene los casos de uso read-only de reportería:
// ingresos, pedidos, menú, mesas y personal.
package analytics

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// Period ventana temporal semicerrada [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod traduce los parámetros de período a una ventana [start, end).
//
// Acepta tres formas, en este orden de precedencia:
//   - start y end explícitos (end exclusivo)
//   - preset: "today" | "month" | "last7days" | "last30days"
//   - sin nada: últimos 30 días
func ResolvePeriod(startStr, endStr, preset string, now time.Time) (Period, error) {
	if startStr != "" || endStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return Period{}, domain.ErrInvalidInput
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return Period{}, domain.ErrInvalidInput
		}
		if !start.Before(end) {
			return Period{}, domain.ErrInvalidInput
		}
		return Period{Start: start, End: end}, nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch preset {
	case "today":
		return Period{Start: today, End: today.AddDate(0, 0, 1)}, nil
	case "month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Period{Start: monthStart, End: today.AddDate(0, 0, 1)}, nil
	case "last7days":
		return Period{Start: today.AddDate(0, 0, -6), End: today.AddDate(0, 0, 1)}, nil
	case "", "last30days":
		return Period{Start: today.AddDate(0, 0, -29), End: today.AddDate(0, 0, 1)}, nil
	default:
		return Period{}, domain.ErrInvalidInput
	}
}
