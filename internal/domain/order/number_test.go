package order_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain/order"
)

func TestBuildNumber_Formato(t *testing.T) {
	date := time.Date(2026, 8, 29, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "ORD-20260829-00042-K7PM", order.BuildNumber(date, 42, "K7PM"))
}

func TestBuildNumber_SecuenciaLarga(t *testing.T) {
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	// La secuencia no se trunca cuando supera los 5 dígitos.
	assert.Equal(t, "ORD-20260102-123456-AAAA", order.BuildNumber(date, 123456, "AAAA"))
}

func TestRandomSuffix_LongitudYAlfabeto(t *testing.T) {
	const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
	for i := 0; i < 50; i++ {
		suffix, err := order.RandomSuffix()
		require.NoError(t, err)
		require.Len(t, suffix, order.SuffixLength)
		for _, r := range suffix {
			assert.True(t, strings.ContainsRune(alphabet, r),
				"sufijo %q contiene %q fuera del alfabeto sin ambiguos", suffix, r)
		}
	}
}
