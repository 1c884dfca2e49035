package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/xlsx"
)

func TestExportProjects(t *testing.T) {
	email := "ana@acme.test"
	now := time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC)
	projects := []*entity.ProjectSummary{
		{
			Project:        entity.Project{ID: "p2", Name: "Baño", DesignMode: "3d", IsDraft: false, CreatedAt: now, UpdatedAt: now},
			VersionCount:   4,
			CreatedByEmail: &email,
		},
		{
			Project:      entity.Project{ID: "p1", Name: "Cocina", DesignMode: "2d", IsDraft: true, CreatedAt: now, UpdatedAt: now},
			VersionCount: 0,
		},
	}

	out, err := xlsx.NewProjectExporter().ExportProjects(context.Background(), projects)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetName}, f.GetSheetList())
	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Versiones", rows[0][6])
	assert.Equal(t, []string{"p2", "Baño", "", "3d", "No", "", "4", "ana@acme.test", "2026-05-04 12:30:00", "2026-05-04 12:30:00"}, rows[1])
	assert.Equal(t, "p1", rows[2][0])
	assert.Equal(t, "Sí", rows[2][4])
}

func TestExportProjects_Vacio(t *testing.T) {
	out, err := xlsx.NewProjectExporter().ExportProjects(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
