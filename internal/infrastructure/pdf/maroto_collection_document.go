// Package pdf implementa la representación imprimible de la factura de retiro:
// el documento que el cliente presenta en la bodega para la verificación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Depósito  │  N° Factura + Fecha de solicitud        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Línea | Orden de compra | Litros asignados           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL AUTORIZADO + combustible + estado                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR con el N° de factura + instrucciones de verificación     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/fueldepot-api/internal/application/collection"
	"github.com/jhoicas/fueldepot-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCollectionDocument implementa collection.InvoicePDFGenerator usando Maroto v2.
type MarotoCollectionDocument struct {
	depotName string
}

// NewMarotoCollectionDocument construye el generador con el nombre del depósito.
func NewMarotoCollectionDocument(depotName string) *MarotoCollectionDocument {
	return &MarotoCollectionDocument{depotName: depotName}
}

var _ collection.InvoicePDFGenerator = (*MarotoCollectionDocument)(nil)

// GenerateCollectionPDF genera el PDF de la factura de retiro y devuelve sus bytes.
func (g *MarotoCollectionDocument) GenerateCollectionPDF(
	_ context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
	lines []*entity.Withdrawal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de Retiro de Combustible", true).
		WithAuthor(g.depotName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.depotName, invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range warehouseFooterRows(invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del depósito (izq) y N° de factura + fecha (der).
func headerRow(depotName string, invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(depotName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Libro de derechos de combustible", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE RETIRO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("INV#"+strconv.FormatInt(invoice.ID, 10), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Solicitada: "+invoice.RequestDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente que retira.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Cliente #%d   |   Email: %s   |   Tel: %s",
				customer.ID,
				nonEmpty(customer.Email, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas de asignación.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Línea", 2, align.Center),
		h("Orden de compra", 6, align.Left),
		h("Litros asignados", 4, align.Right),
	)
}

// tableLineRows: una fila por línea de asignación (orden FIFO).
func tableLineRows(lines []*entity.Withdrawal) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, w := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				strconv.FormatInt(w.ID, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				"ORD#"+strconv.FormatInt(w.OrderID, 10),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				w.QtyTaken.StringFixed(3)+" L",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total autorizado + combustible + estado.
func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New("Combustible: "+invoice.FuelType.String(), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
			text.New("Estado: "+string(invoice.Status), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL AUTORIZADO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
			text.New(invoice.QuantityCollected.StringFixed(3)+" L", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 9, Right: 1,
			}),
		),
	)
}

// warehouseFooterRows: QR con el número de factura + instrucciones para bodega.
func warehouseFooterRows(invoice *entity.Invoice) []core.Row {
	qrData := "INV#" + strconv.FormatInt(invoice.ID, 10)
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("VERIFICACIÓN EN BODEGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(40).Add(
			col.New(4).Add(code.NewQr(qrData, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Presente este documento en la bodega.\nEl personal verificará su identidad\ny el estado de la factura antes de la entrega.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("La factura se entrega una sola vez.", props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 24, Left: 3, Color: colorPrimary,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
