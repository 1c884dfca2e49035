package repository

import (
	"context"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

// CatalogRepository persistencia de los bloques publicados en tiempo de ejecución.
type CatalogRepository interface {
	List(ctx context.Context) ([]*entity.Block, error)
	// Upsert reemplaza el bloque con el mismo id (last-write-wins).
	Upsert(ctx context.Context, b *entity.Block) error
}
