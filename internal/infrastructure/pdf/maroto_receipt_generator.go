// Package pdf implementa la generación del recibo de pedido en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante + contacto  │  N° Pedido + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / Envío / TOTAL                │
//	│  FOOTER: método y estado de pago + leyenda                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/ordering"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ordering.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ordering.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	order *entity.Order,
	items []*entity.OrderItem,
	restaurant *entity.Restaurant,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+order.OrderNumber, true).
		WithAuthor(restaurant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, restaurant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: restaurante + contacto (izq) y N° pedido + fecha (der).
func headerRow(order *entity.Order, restaurant *entity.Restaurant) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006 15:04")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(restaurant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(restaurant.Address, props.Text{Size: 9, Top: 9, Color: colorGray}),
			text.New("Tel: "+restaurant.Phone, props.Text{Size: 9, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECIBO "+order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{Size: 9, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

// tableHeaderRow: encabezado de la tabla de líneas.
func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	headerR := header
	headerR.Align = align.Right
	return row.New(8).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", headerR)),
		col.New(3).Add(text.New("Total", headerR)),
	)
}

// itemRow: una línea del pedido con su snapshot de precio.
func itemRow(it *entity.OrderItem) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellR := cell
	cellR.Align = align.Right
	return row.New(6).Add(
		col.New(1).Add(text.New(strconv.Itoa(it.Quantity), cell)),
		col.New(6).Add(text.New(it.ItemName, cell)),
		col.New(2).Add(text.New(money(it.Price), cellR)),
		col.New(3).Add(text.New(money(it.Total), cellR)),
	)
}

// totalsRows: subtotal, impuesto, envío (si aplica) y total a pagar.
func totalsRows(order *entity.Order) []core.Row {
	rows := []core.Row{
		totalLine("Subtotal", money(order.Subtotal), false),
		totalLine("Impuesto", money(order.TaxAmount), false),
	}
	if order.DeliveryFee.IsPositive() {
		rows = append(rows, totalLine("Envío", money(order.DeliveryFee), false))
	}
	rows = append(rows, totalLine("TOTAL", money(order.TotalAmount), true))
	return rows
}

func totalLine(label, value string, bold bool) core.Row {
	style := props.Text{Size: 9, Align: align.Right, Top: 1}
	if bold {
		style.Style = fontstyle.Bold
		style.Size = 11
		style.Color = colorPrimary
	}
	return row.New(6).Add(
		col.New(9).Add(text.New(label, style)),
		col.New(3).Add(text.New(value, style)),
	)
}

// footerRow: método y estado de pago.
func footerRow(order *entity.Order) core.Row {
	pago := fmt.Sprintf("Pago: %s · Estado: %s", order.PaymentMethod, order.PaymentStatus)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(pago, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New("Gracias por su visita", props.Text{Size: 8, Color: colorGray, Top: 5}),
		),
	)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
