package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `p.id, p.company_id, p.user_id, p.name, p.description, p.design_mode, p.is_draft, p.folder_id, p.created_at, p.updated_at`

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
// Toda consulta incluye company_id en el WHERE.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador con un pool o una tx.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un proyecto nuevo.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	const query = `
		INSERT INTO projects (id, company_id, user_id, name, description, design_mode, is_draft, folder_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.UserID, p.Name, p.Description, p.DesignMode, p.IsDraft, p.FolderID,
		p.CreatedAt, p.UpdatedAt,
	)
	return wrapErr("insert project", err)
}

// ListByCompany lista los proyectos del tenant con conteo de versiones y email del creador.
func (r *ProjectRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.ProjectSummary, error) {
	const query = `
		SELECT ` + projectColumns + `,
		       u.email,
		       (SELECT COUNT(*) FROM project_data pd WHERE pd.project_id = p.id)
		FROM projects p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.company_id = $1
		ORDER BY p.updated_at DESC, p.created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, wrapErr("list projects", err)
	}
	defer rows.Close()

	list := make([]*entity.ProjectSummary, 0)
	for rows.Next() {
		var s entity.ProjectSummary
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.UserID, &s.Name, &s.Description, &s.DesignMode, &s.IsDraft, &s.FolderID,
			&s.CreatedAt, &s.UpdatedAt, &s.CreatedByEmail, &s.VersionCount,
		); err != nil {
			return nil, wrapErr("scan project", err)
		}
		list = append(list, &s)
	}
	return list, wrapErr("list projects", rows.Err())
}

// GetByID obtiene un proyecto del tenant; (nil, nil) si no existe o es de otro tenant.
func (r *ProjectRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1 AND p.company_id = $2`
	return r.getOne(ctx, "get project", query, id, companyID)
}

// GetForUpdate igual que GetByID tomando un lock de fila (SELECT ... FOR UPDATE).
// Serializa los appends concurrentes sobre el mismo proyecto sin afectar a los demás.
func (r *ProjectRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1 AND p.company_id = $2 FOR UPDATE`
	return r.getOne(ctx, "get project for update", query, id, companyID)
}

func (r *ProjectRepo) getOne(ctx context.Context, op, query, id, companyID string) (*entity.Project, error) {
	p, err := scanProject(r.q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return p, nil
}

// Update persiste nombre, descripción y updated_at.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	const query = `
		UPDATE projects SET name = $3, description = $4, updated_at = $5
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, p.ID, p.CompanyID, p.Name, p.Description, p.UpdatedAt)
	return wrapErr("update project", err)
}

// Touch actualiza updated_at (se llama en cada guardado de datos).
func (r *ProjectRepo) Touch(ctx context.Context, companyID, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE projects SET updated_at = $3 WHERE id = $1 AND company_id = $2`, id, companyID, at)
	return wrapErr("touch project", err)
}

// Delete elimina el proyecto; project_data y pdf_backgrounds caen por ON DELETE CASCADE.
func (r *ProjectRepo) Delete(ctx context.Context, companyID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return false, wrapErr("delete project", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	if err := row.Scan(
		&p.ID, &p.CompanyID, &p.UserID, &p.Name, &p.Description, &p.DesignMode, &p.IsDraft, &p.FolderID,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
