// Package pdf implementa el reporte imprimible del inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  FILTROS aplicados                                           │
//	│  KPIs: Stock total | Demanda total | Fill rate               │
//	│  ESTADOS: healthy / low / critical (sobre el listado)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | SKU | Bodega | Stock | Demanda | Est. │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/report"
	"github.com/jhoicas/inventory-dashboard/internal/domain/inventory"
)

var _ report.InventoryReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHealthy  = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorLow      = &props.Color{Red: 180, Green: 120, Blue: 0}
	colorCritical = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.InventoryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador. Los números se agrupan por miles
// según lang (ej: language.English → 1,234).
func NewMarotoReportGenerator(lang language.Tag) *MarotoReportGenerator {
	return &MarotoReportGenerator{printer: message.NewPrinter(lang)}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, r *report.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(filterRow(r.Filter))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRow(r))
	m.AddRows(g.statusRow(r.StatusCount))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(r)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *report.InventoryReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Reporte de inventario", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func filterRow(f dto.ProductFilterRequest) core.Row {
	parts := make([]string, 0, 3)
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("búsqueda %q", f.Search))
	}
	if f.Warehouse != "" {
		parts = append(parts, "bodega "+f.Warehouse)
	}
	if f.Status != "" && f.Status != inventory.StatusAll {
		parts = append(parts, "estado "+f.Status)
	}
	label := "Filtros: ninguno"
	if len(parts) > 0 {
		label = "Filtros: " + strings.Join(parts, ", ")
	}
	return text.NewRow(6, label, props.Text{Size: 8, Color: colorGray})
}

// kpiRow: totales del catálogo completo, independientes del filtro.
func (g *MarotoReportGenerator) kpiRow(r *report.InventoryReport) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 13, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		kpi("Stock total", g.printer.Sprintf("%d", r.TotalStock)),
		kpi("Demanda total", g.printer.Sprintf("%d", r.TotalDemand)),
		kpi("Fill rate", r.FillRate.StringFixed(1)+"%"),
	)
}

func (g *MarotoReportGenerator) statusRow(counts map[inventory.Status]int) core.Row {
	cell := func(s inventory.Status) core.Col {
		return col.New(4).Add(text.New(
			g.printer.Sprintf("%s: %d", s, counts[s]),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: statusColor(s), Top: 1},
		))
	}
	return row.New(8).Add(
		cell(inventory.StatusHealthy),
		cell(inventory.StatusLow),
		cell(inventory.StatusCritical),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Left),
		h("Producto", 3, align.Left),
		h("SKU", 2, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Demanda", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableRows: una fila por producto.
func (g *MarotoReportGenerator) tableRows(r *report.InventoryReport) []core.Row {
	if len(r.Products) == 0 {
		return []core.Row{text.NewRow(8, "Sin productos para los filtros aplicados.", props.Text{
			Size: 8, Color: colorGray, Align: align.Center, Top: 2,
		})}
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	rows := make([]core.Row, 0, len(r.Products))
	for _, p := range r.Products {
		status := inventory.Status(p.Status)
		rows = append(rows, row.New(6).Add(
			cell(p.ID, 1, align.Left),
			cell(p.Name, 3, align.Left),
			cell(p.SKU, 2, align.Left),
			cell(nonEmpty(r.Warehouses[p.Warehouse], p.Warehouse), 2, align.Left),
			cell(g.printer.Sprintf("%d", p.Stock), 1, align.Right),
			cell(g.printer.Sprintf("%d", p.Demand), 1, align.Right),
			col.New(2).Add(text.New(p.Status, props.Text{
				Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold, Color: statusColor(status),
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(s inventory.Status) *props.Color {
	switch s {
	case inventory.StatusHealthy:
		return colorHealthy
	case inventory.StatusLow:
		return colorLow
	default:
		return colorCritical
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
