package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// Instante de referencia: sábado 29 de agosto de 2026, 15:04 en Bogotá.
var refNow = time.Date(2026, time.August, 29, 15, 4, 0, 0, time.FixedZone("COT", -5*3600))

func midnight(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, refNow.Location())
}

// ──────────────────────────────────────────────────────────────────────────────
// Presets
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePeriod_Presets(t *testing.T) {
	cases := []struct {
		name   string
		preset string
		start  time.Time
		end    time.Time
	}{
		{"hoy", "today", midnight(2026, time.August, 29), midnight(2026, time.August, 30)},
		{"mes en curso", "month", midnight(2026, time.August, 1), midnight(2026, time.August, 30)},
		{"ultimos 7 dias", "last7days", midnight(2026, time.August, 23), midnight(2026, time.August, 30)},
		{"ultimos 30 dias", "last30days", midnight(2026, time.July, 31), midnight(2026, time.August, 30)},
		{"sin preset equivale a last30days", "", midnight(2026, time.July, 31), midnight(2026, time.August, 30)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := analytics.ResolvePeriod("", "", tc.preset, refNow)
			require.NoError(t, err)
			assert.True(t, p.Start.Equal(tc.start), "start: esperado %s, obtenido %s", tc.start, p.Start)
			assert.True(t, p.End.Equal(tc.end), "end: esperado %s, obtenido %s", tc.end, p.End)
		})
	}
}

// El fin de ventana es siempre la medianoche del día siguiente: el día en
// curso queda incluido completo aunque now sea media tarde.
func TestResolvePeriod_DiaEnCursoIncluido(t *testing.T) {
	p, err := analytics.ResolvePeriod("", "", "today", refNow)
	require.NoError(t, err)

	assert.True(t, refNow.After(p.Start) && refNow.Before(p.End))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango explícito
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePeriod_RangoExplicito(t *testing.T) {
	p, err := analytics.ResolvePeriod("2026-08-01T00:00:00Z", "2026-08-15T00:00:00Z", "", refNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), p.Start.UTC())
	assert.Equal(t, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), p.End.UTC())
}

// start/end explícitos mandan sobre el preset.
func TestResolvePeriod_ExplicitoGanaAlPreset(t *testing.T) {
	p, err := analytics.ResolvePeriod("2026-08-01T00:00:00Z", "2026-08-02T00:00:00Z", "today", refNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), p.Start.UTC())
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas inválidas
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePeriod_EntradasInvalidas(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"start sin end", "2026-08-01T00:00:00Z", ""},
		{"end sin start", "", "2026-08-15T00:00:00Z"},
		{"start mal formado", "01/08/2026", "2026-08-15T00:00:00Z"},
		{"end mal formado", "2026-08-01T00:00:00Z", "ayer"},
		{"start igual a end", "2026-08-01T00:00:00Z", "2026-08-01T00:00:00Z"},
		{"start posterior a end", "2026-08-15T00:00:00Z", "2026-08-01T00:00:00Z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := analytics.ResolvePeriod(tc.start, tc.end, "", refNow)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestResolvePeriod_PresetDesconocido(t *testing.T) {
	_, err := analytics.ResolvePeriod("", "", "lastyear", refNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
