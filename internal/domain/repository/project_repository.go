package repository

import (
	"context"
	"time"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

// ProjectRepository puerto de persistencia de metadatos de proyecto.
// Todas las lecturas y escrituras filtran por companyID; un proyecto de otro tenant se comporta como inexistente.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	// ListByCompany ordena por updated_at descendente e incluye el conteo de versiones.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.ProjectSummary, error)
	// GetByID devuelve (nil, nil) si no existe o pertenece a otro tenant.
	GetByID(ctx context.Context, companyID, id string) (*entity.Project, error)
	// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, companyID, id string) (*entity.Project, error)
	Update(ctx context.Context, p *entity.Project) error
	Touch(ctx context.Context, companyID, id string, at time.Time) error
	// Delete devuelve false si no había nada que borrar. Las versiones y fondos PDF se borran en cascada.
	Delete(ctx context.Context, companyID, id string) (bool, error)
}

// ProjectDataRepository log append-only de snapshots por proyecto.
type ProjectDataRepository interface {
	// NextVersion devuelve MAX(version)+1 (1 si no hay filas). Debe llamarse con el proyecto bloqueado.
	NextVersion(ctx context.Context, projectID string) (int, error)
	Create(ctx context.Context, v *entity.ProjectDataVersion) error
	// Latest devuelve la versión más alta o (nil, nil) si el proyecto no tiene datos.
	Latest(ctx context.Context, companyID, projectID string) (*entity.ProjectDataVersion, error)
}

// PdfBackgroundRepository referencias a fondos PDF de un proyecto.
type PdfBackgroundRepository interface {
	Create(ctx context.Context, bg *entity.PdfBackground) error
	// ListByProject ordena de más reciente a más antiguo.
	ListByProject(ctx context.Context, companyID, projectID string) ([]*entity.PdfBackground, error)
}
