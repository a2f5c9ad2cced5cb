package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/order"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Pedido de referencia: 2 × $10.00 + 1 × $5.00 → subtotal 25.00,
// impuesto 2.00, total 27.00.
func validLines() []order.LineInput {
	return []order.LineInput{
		{Price: dec("10.00"), Quantity: 2, Total: dec("20.00")},
		{Price: dec("5.00"), Quantity: 1, Total: dec("5.00")},
	}
}

func validTotals() order.Totals {
	return order.Totals{
		Subtotal:    dec("25.00"),
		TaxAmount:   dec("2.00"),
		DeliveryFee: decimal.Zero,
		TotalAmount: dec("27.00"),
	}
}

func TestValidateTotals_PedidoConsistente(t *testing.T) {
	require.NoError(t, order.ValidateTotals(validLines(), validTotals()))
}

func TestValidateTotals_SinLineas(t *testing.T) {
	err := order.ValidateTotals(nil, validTotals())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateTotals_CantidadInvalida(t *testing.T) {
	lines := validLines()
	lines[0].Quantity = 0
	assert.ErrorIs(t, order.ValidateTotals(lines, validTotals()), domain.ErrInvalidInput)

	lines[0].Quantity = -2
	assert.ErrorIs(t, order.ValidateTotals(lines, validTotals()), domain.ErrInvalidInput)
}

func TestValidateTotals_PrecioNegativo(t *testing.T) {
	lines := validLines()
	lines[1].Price = dec("-5.00")
	assert.ErrorIs(t, order.ValidateTotals(lines, validTotals()), domain.ErrInvalidInput)
}

func TestValidateTotals_TotalDeLineaNoReconcilia(t *testing.T) {
	lines := validLines()
	lines[0].Total = dec("19.99") // debería ser 20.00
	assert.ErrorIs(t, order.ValidateTotals(lines, validTotals()), domain.ErrInvalidInput)
}

func TestValidateTotals_SubtotalNoReconcilia(t *testing.T) {
	totals := validTotals()
	totals.Subtotal = dec("24.00")
	totals.TotalAmount = dec("26.00") // consistente con el subtotal falso
	assert.ErrorIs(t, order.ValidateTotals(validLines(), totals), domain.ErrInvalidInput)
}

func TestValidateTotals_TotalNoReconcilia(t *testing.T) {
	totals := validTotals()
	totals.TotalAmount = dec("27.01")
	assert.ErrorIs(t, order.ValidateTotals(validLines(), totals), domain.ErrInvalidInput)
}

func TestValidateTotals_RecargosNegativos(t *testing.T) {
	totals := validTotals()
	totals.TaxAmount = dec("-2.00")
	totals.TotalAmount = dec("23.00")
	assert.ErrorIs(t, order.ValidateTotals(validLines(), totals), domain.ErrInvalidInput)

	totals = validTotals()
	totals.DeliveryFee = dec("-1.00")
	totals.TotalAmount = dec("26.00")
	assert.ErrorIs(t, order.ValidateTotals(validLines(), totals), domain.ErrInvalidInput)
}

func TestValidateTotals_ConDomicilio(t *testing.T) {
	totals := validTotals()
	totals.DeliveryFee = dec("3.50")
	totals.TotalAmount = dec("30.50")
	require.NoError(t, order.ValidateTotals(validLines(), totals))
}

// La comparación decimal es por valor: 20 y 20.00 reconcilian.
func TestValidateTotals_EscalasDistintasReconcilian(t *testing.T) {
	lines := []order.LineInput{{Price: dec("10"), Quantity: 2, Total: dec("20.00")}}
	totals := order.Totals{
		Subtotal:    dec("20"),
		TaxAmount:   decimal.Zero,
		DeliveryFee: decimal.Zero,
		TotalAmount: dec("20.000"),
	}
	require.NoError(t, order.ValidateTotals(lines, totals))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, order.LineTotal(dec("9.99"), 3).Equal(dec("29.97")))
	assert.True(t, order.LineTotal(dec("0.10"), 3).Equal(dec("0.30")),
		"aritmética decimal exacta, sin deriva de float")
}
