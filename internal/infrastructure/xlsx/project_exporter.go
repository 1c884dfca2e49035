// Package xlsx exporta el listado de proyectos de un tenant como planilla Excel.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kabs-design-api/internal/application/project"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

var _ project.SpreadsheetExporter = (*ProjectExporter)(nil)

// SheetName nombre de la hoja con el listado.
const SheetName = "Proyectos"

var headers = []string{
	"ID", "Nombre", "Descripción", "Modo", "Borrador", "Carpeta",
	"Versiones", "Creado por", "Creado", "Actualizado",
}

var columnWidths = []float64{38, 30, 40, 8, 10, 38, 10, 30, 20, 20}

// ProjectExporter implementa project.SpreadsheetExporter con excelize.
type ProjectExporter struct{}

func NewProjectExporter() *ProjectExporter { return &ProjectExporter{} }

// ExportProjects escribe una fila por proyecto, en el orden recibido, con la cabecera congelada.
func (e *ProjectExporter) ExportProjects(ctx context.Context, projects []*entity.ProjectSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: borrar hoja por defecto: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("xlsx: estilo %s: %w", cell, err)
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, name, name, columnWidths[i]); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}

	for i, p := range projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := []any{
			p.ID,
			p.Name,
			deref(p.Description),
			p.DesignMode,
			yesNo(p.IsDraft),
			deref(p.FolderID),
			p.VersionCount,
			deref(p.CreatedByEmail),
			p.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			p.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			if err := setCellValue(f, j+1, i+2, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d col %d: %w", i+2, j+1, err)
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: congelar cabecera: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setCellValue(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, value)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
