// Package pdf genera la ficha resumen de un proyecto de diseño en una página A4.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del proyecto  │  Modo + Estado              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: ID / Carpeta / Creado / Actualizado / Descripción   │
//	│  VERSIÓN: N° última versión + fecha de guardado             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Archivo PDF | Páginas | Subido                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el id del proyecto                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

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

	"github.com/jhoicas/kabs-design-api/internal/application/project"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

var _ project.SummaryRenderer = (*MarotoSummaryRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// maxBackgroundRows mantiene la ficha en una sola página.
const maxBackgroundRows = 25

const dateLayout = "02/01/2006 15:04"

// MarotoSummaryRenderer implementa project.SummaryRenderer usando Maroto v2.
type MarotoSummaryRenderer struct{}

func NewMarotoSummaryRenderer() *MarotoSummaryRenderer { return &MarotoSummaryRenderer{} }

// RenderProjectSummary genera el PDF y devuelve sus bytes.
func (r *MarotoSummaryRenderer) RenderProjectSummary(_ context.Context, detail *entity.ProjectDetail) ([]byte, error) {
	if detail == nil {
		return nil, fmt.Errorf("pdf: proyecto nulo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de proyecto", true).
		WithAuthor("KABS Design Tool", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(detail))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoRows(detail)...)
	m.AddRows(versionRow(detail.Latest))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(backgroundRows(detail.PdfBackgrounds)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(detail))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(d *entity.ProjectDetail) core.Row {
	status := "Publicado"
	if d.IsDraft {
		status = "Borrador"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(d.Name, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("RESUMEN DE PROYECTO", props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Modo "+strings.ToUpper(d.DesignMode), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(status, props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
		),
	)
}

func infoRows(d *entity.ProjectDetail) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(9).Add(text.New(value, props.Text{Size: 8, Top: 1, Color: colorGray})),
		)
	}
	rows := []core.Row{
		field("ID", d.ID),
		field("Carpeta", deref(d.FolderID, "—")),
		field("Creado", d.CreatedAt.UTC().Format(dateLayout)),
		field("Actualizado", d.UpdatedAt.UTC().Format(dateLayout)),
	}
	if desc := deref(d.Description, ""); desc != "" {
		rows = append(rows, row.New(14).Add(
			col.New(3).Add(text.New("Descripción", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(9).Add(text.New(desc, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

func versionRow(v *entity.ProjectDataVersion) core.Row {
	label := "Sin versiones guardadas"
	if v != nil {
		label = fmt.Sprintf("Versión %d guardada el %s", v.Version, v.UpdatedAt.UTC().Format(dateLayout))
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fondo PDF", 7, align.Left),
		h("Páginas", 2, align.Center),
		h("Subido", 3, align.Right),
	)
}

// backgroundRows: una fila por referencia, recortando al máximo de la página.
func backgroundRows(bgs []*entity.PdfBackground) []core.Row {
	if len(bgs) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin fondos PDF asociados", props.Text{Size: 8, Top: 1, Color: colorGray, Left: 1}),
		))}
	}
	shown := bgs
	if len(shown) > maxBackgroundRows {
		shown = shown[:maxBackgroundRows]
	}
	result := make([]core.Row, 0, len(shown)+1)
	for _, b := range shown {
		result = append(result, row.New(7).Add(
			col.New(7).Add(text.New(b.FileName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(b.PageCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(b.CreatedAt.UTC().Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	if extra := len(bgs) - len(shown); extra > 0 {
		result = append(result, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("… y %d más", extra), props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray}),
		)))
	}
	return result
}

func footerRow(d *entity.ProjectDetail) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(d.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Generado el "+time.Now().UTC().Format(dateLayout)+" UTC", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("El código QR contiene el identificador del proyecto.", props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func deref(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
