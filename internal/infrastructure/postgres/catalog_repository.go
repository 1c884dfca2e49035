package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo bloques publicados en tiempo de ejecución (tabla catalog_blocks).
// Las dimensiones son NUMERIC y viajan como decimal.Decimal gracias a pgxdecimal.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// List devuelve todos los bloques persistidos ordenados por id.
func (r *CatalogRepo) List(ctx context.Context) ([]*entity.Block, error) {
	const query = `
		SELECT id, name, category, COALESCE(manufacturer, ''), COALESCE(sku, ''), tags, COALESCE(module_class, ''),
		       width, height, depth, COALESCE(description, ''), plan_symbols, updated_at
		FROM catalog_blocks ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("list catalog blocks", err)
	}
	defer rows.Close()

	list := make([]*entity.Block, 0)
	for rows.Next() {
		var b entity.Block
		var symbols []byte
		if err := rows.Scan(&b.ID, &b.Name, &b.Category, &b.Manufacturer, &b.SKU, &b.Tags, &b.ModuleClass,
			&b.Width, &b.Height, &b.Depth, &b.Description, &symbols, &b.UpdatedAt); err != nil {
			return nil, wrapErr("scan catalog block", err)
		}
		if err := json.Unmarshal(symbols, &b.PlanSymbols); err != nil {
			return nil, fmt.Errorf("decode plan_symbols de %s: %w", b.ID, err)
		}
		b.Type = entity.BlockTypeFurniture
		list = append(list, &b)
	}
	return list, wrapErr("list catalog blocks", rows.Err())
}

// Upsert inserta o reemplaza el bloque por id.
func (r *CatalogRepo) Upsert(ctx context.Context, b *entity.Block) error {
	symbols, err := json.Marshal(b.PlanSymbols)
	if err != nil {
		return fmt.Errorf("encode plan_symbols: %w", err)
	}
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	const query = `
		INSERT INTO catalog_blocks (id, name, category, manufacturer, sku, tags, module_class,
		                            width, height, depth, description, plan_symbols, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''), $8, $9, $10, NULLIF($11, ''), $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, category = EXCLUDED.category, manufacturer = EXCLUDED.manufacturer,
			sku = EXCLUDED.sku, tags = EXCLUDED.tags, module_class = EXCLUDED.module_class,
			width = EXCLUDED.width, height = EXCLUDED.height, depth = EXCLUDED.depth,
			description = EXCLUDED.description, plan_symbols = EXCLUDED.plan_symbols, updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(ctx, query, b.ID, b.Name, b.Category, b.Manufacturer, b.SKU, tags, b.ModuleClass,
		b.Width, b.Height, b.Depth, b.Description, symbols, b.UpdatedAt)
	return wrapErr("upsert catalog block", err)
}
