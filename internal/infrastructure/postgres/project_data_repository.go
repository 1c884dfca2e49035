package postgres

import (
	"context"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

var _ repository.ProjectDataRepository = (*ProjectDataRepo)(nil)

// ProjectDataRepo log de versiones (tabla project_data). Solo inserta; un trigger rechaza UPDATE.
type ProjectDataRepo struct {
	q Querier
}

// NewProjectDataRepository construye el adaptador con un pool o una tx.
func NewProjectDataRepository(q Querier) *ProjectDataRepo {
	return &ProjectDataRepo{q: q}
}

// NextVersion devuelve MAX(version)+1. Sin el lock del proyecto dos llamadas concurrentes
// obtendrían el mismo número; UNIQUE(project_id, version) lo convertiría en ErrConflict.
func (r *ProjectDataRepo) NextVersion(ctx context.Context, projectID string) (int, error) {
	var next int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM project_data WHERE project_id = $1`, projectID,
	).Scan(&next)
	if err != nil {
		return 0, wrapErr("next version", err)
	}
	return next, nil
}

// Create inserta una versión inmutable.
func (r *ProjectDataRepo) Create(ctx context.Context, v *entity.ProjectDataVersion) error {
	const query = `
		INSERT INTO project_data (id, project_id, data_json, version, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, v.ID, v.ProjectID, []byte(v.Data), v.Version, v.UpdatedAt)
	return wrapErr("insert project data", err)
}

// Latest devuelve la versión más alta del proyecto, filtrando por tenant vía projects.
func (r *ProjectDataRepo) Latest(ctx context.Context, companyID, projectID string) (*entity.ProjectDataVersion, error) {
	const query = `
		SELECT pd.id, pd.project_id, pd.data_json, pd.version, pd.updated_at
		FROM project_data pd
		JOIN projects p ON p.id = pd.project_id
		WHERE pd.project_id = $1 AND p.company_id = $2
		ORDER BY pd.version DESC
		LIMIT 1`
	var v entity.ProjectDataVersion
	var data []byte
	err := r.q.QueryRow(ctx, query, projectID, companyID).Scan(&v.ID, &v.ProjectID, &data, &v.Version, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr("latest project data", err)
	}
	v.Data = data
	return &v, nil
}
