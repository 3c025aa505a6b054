// Package pdf implementa la representación gráfica del stock de una bodega.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega                │  Fecha de corte             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Unidades                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos registrados / unidades / sin stock      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
)

var _ inventory.StockPDFGenerator = (*MarotoStockReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReport implementa inventory.StockPDFGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockPDF(
	_ context.Context,
	warehouseID string,
	items []entity.Stock,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		WithAuthor(warehouseID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(warehouseID, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(warehouseID string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Bodega: "+warehouseID, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Corte: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("Producto", props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2, Left: 1, Color: colorPrimary,
		})),
		col.New(3).Add(text.New("Unidades", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 1, Color: colorPrimary,
		})),
	)
}

// tableRows una fila por producto; los productos en 0 se resaltan.
func tableRows(items []entity.Stock) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, s := range items {
		qtyProps := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if s.Quantity == 0 {
			qtyProps.Color = colorAlert
			qtyProps.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New(s.Product, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(formatThousands(s.Quantity), qtyProps)),
		))
	}
	return rows
}

func totalsRow(items []entity.Stock) core.Row {
	units, empty := 0, 0
	for _, s := range items {
		units += s.Quantity
		if s.Quantity == 0 {
			empty++
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Productos:"),
			label("Unidades:"),
			label("Sin stock:"),
		),
		col.New(3).Add(
			value(formatThousands(len(items))),
			value(formatThousands(units)),
			value(formatThousands(empty)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatThousands inserta puntos de miles. Ej: 9000 → "9.000".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
