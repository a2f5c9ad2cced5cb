// Package order contiene los servicios de dominio puros del ciclo de vida de
// pedidos: reconciliación de totales y generación del número de pedido.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// LineInput línea candidata para la reconciliación: precio snapshot
// suministrado por el caller y cantidad.
type LineInput struct {
	Price    decimal.Decimal
	Quantity int
	Total    decimal.Decimal
}

// Totals montos declarados por el caller para un pedido.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	DeliveryFee decimal.Decimal
	TotalAmount decimal.Decimal
}

// ValidateTotals verifica los invariantes monetarios de un pedido antes de
// persistirlo:
//
//	linea.Total    == linea.Price × linea.Quantity   (exacto, sin deriva)
//	Subtotal       == Σ linea.Total
//	TotalAmount    == Subtotal + TaxAmount + DeliveryFee
//
// Los montos no se recomputan: el contrato es que el caller los suministre
// consistentes y aquí solo se rechaza la violación con ErrInvalidInput.
func ValidateTotals(lines []LineInput, totals Totals) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	sum := decimal.Zero
	for _, l := range lines {
		if l.Quantity <= 0 || l.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
		expected := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		if !l.Total.Equal(expected) {
			return domain.ErrInvalidInput
		}
		sum = sum.Add(l.Total)
	}
	if !totals.Subtotal.Equal(sum) {
		return domain.ErrInvalidInput
	}
	if totals.TaxAmount.IsNegative() || totals.DeliveryFee.IsNegative() {
		return domain.ErrInvalidInput
	}
	if !totals.TotalAmount.Equal(totals.Subtotal.Add(totals.TaxAmount).Add(totals.DeliveryFee)) {
		return domain.ErrInvalidInput
	}
	return nil
}

// LineTotal calcula el total exacto de una línea (Price × Quantity).
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// LinesFromItems convierte líneas de pedido persistidas a entradas de
// reconciliación (para re-verificar un pedido existente).
func LinesFromItems(items []*entity.OrderItem) []LineInput {
	lines := make([]LineInput, 0, len(items))
	for _, it := range items {
		lines = append(lines, LineInput{Price: it.Price, Quantity: it.Quantity, Total: it.Total})
	}
	return lines
}
