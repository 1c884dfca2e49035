package project

import (
	"context"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos de proyecto y versiones atados a una misma transacción.
type TxRunner interface {
	RunProject(ctx context.Context, fn func(
		projects repository.ProjectRepository,
		versions repository.ProjectDataRepository,
	) error) error
}

// SpreadsheetExporter genera la planilla de proyectos de un tenant.
type SpreadsheetExporter interface {
	ExportProjects(ctx context.Context, projects []*entity.ProjectSummary) ([]byte, error)
}

// SummaryRenderer genera el resumen imprimible de un proyecto.
type SummaryRenderer interface {
	RenderProjectSummary(ctx context.Context, detail *entity.ProjectDetail) ([]byte, error)
}
