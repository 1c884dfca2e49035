package postgres

import (
	"context"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

var _ repository.PdfBackgroundRepository = (*PdfBackgroundRepo)(nil)

// PdfBackgroundRepo referencias a PDFs de fondo (solo metadatos; el binario vive fuera).
type PdfBackgroundRepo struct {
	q Querier
}

// NewPdfBackgroundRepository construye el adaptador.
func NewPdfBackgroundRepository(q Querier) *PdfBackgroundRepo {
	return &PdfBackgroundRepo{q: q}
}

// Create persiste la referencia.
func (r *PdfBackgroundRepo) Create(ctx context.Context, bg *entity.PdfBackground) error {
	const query = `
		INSERT INTO pdf_backgrounds (id, project_id, file_url, file_name, page_count, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	metadata := []byte(bg.Metadata)
	if len(metadata) == 0 {
		metadata = []byte(`{}`)
	}
	_, err := r.q.Exec(ctx, query, bg.ID, bg.ProjectID, bg.FileURL, bg.FileName, bg.PageCount, metadata, bg.CreatedAt)
	return wrapErr("insert pdf background", err)
}

// ListByProject devuelve las referencias del proyecto, más recientes primero.
func (r *PdfBackgroundRepo) ListByProject(ctx context.Context, companyID, projectID string) ([]*entity.PdfBackground, error) {
	const query = `
		SELECT b.id, b.project_id, b.file_url, b.file_name, b.page_count, b.metadata, b.created_at
		FROM pdf_backgrounds b
		JOIN projects p ON p.id = b.project_id
		WHERE b.project_id = $1 AND p.company_id = $2
		ORDER BY b.created_at DESC`
	rows, err := r.q.Query(ctx, query, projectID, companyID)
	if err != nil {
		return nil, wrapErr("list pdf backgrounds", err)
	}
	defer rows.Close()

	list := make([]*entity.PdfBackground, 0)
	for rows.Next() {
		var bg entity.PdfBackground
		var metadata []byte
		if err := rows.Scan(&bg.ID, &bg.ProjectID, &bg.FileURL, &bg.FileName, &bg.PageCount, &metadata, &bg.CreatedAt); err != nil {
			return nil, wrapErr("scan pdf background", err)
		}
		bg.Metadata = metadata
		list = append(list, &bg)
	}
	return list, wrapErr("list pdf backgrounds", rows.Err())
}
