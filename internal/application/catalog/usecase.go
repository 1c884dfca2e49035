package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/domain"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

//go:embed default_blocks.json
var defaultBlocksJSON []byte

// DefaultBlocks catálogo de fábrica embebido en el binario.
func DefaultBlocks() ([]entity.Block, error) {
	var blocks []entity.Block
	if err := json.Unmarshal(defaultBlocksJSON, &blocks); err != nil {
		return nil, fmt.Errorf("catálogo por defecto: %w", err)
	}
	return blocks, nil
}

// CatalogUseCase lectura y publicación de bloques. repo es opcional: sin él las publicaciones
// viven solo en memoria hasta reiniciar el proceso.
type CatalogUseCase struct {
	registry *Registry
	repo     repository.CatalogRepository
	now      func() time.Time
}

// NewCatalogUseCase construye el caso de uso sobre un registro ya creado.
func NewCatalogUseCase(registry *Registry, repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{registry: registry, repo: repo, now: time.Now}
}

// Load publica el catálogo por defecto más los bloques persistidos (estos ganan por id).
func (uc *CatalogUseCase) Load(ctx context.Context) (int, error) {
	blocks, err := DefaultBlocks()
	if err != nil {
		return 0, err
	}
	if uc.repo != nil {
		stored, err := uc.repo.List(ctx)
		if err != nil {
			return 0, fmt.Errorf("cargar catálogo persistido: %w", err)
		}
		for _, b := range stored {
			blocks = append(blocks, *b)
		}
	}
	uc.registry.Replace(blocks)
	return uc.registry.Len(), nil
}

// List catálogo vigente.
func (uc *CatalogUseCase) List() dto.CatalogListResponse {
	return dto.CatalogListResponse{Blocks: uc.registry.List()}
}

// Get bloque por id o ErrNotFound.
func (uc *CatalogUseCase) Get(id string) (*entity.Block, error) {
	b, ok := uc.registry.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// Upsert valida, persiste (si hay repo) y publica el bloque. Reemplaza cualquier bloque con el mismo id.
func (uc *CatalogUseCase) Upsert(ctx context.Context, in dto.UpsertBlockRequest) (*entity.Block, error) {
	b, err := uc.buildBlock(in)
	if err != nil {
		return nil, err
	}
	if uc.repo != nil {
		if err := uc.repo.Upsert(ctx, b); err != nil {
			return nil, fmt.Errorf("persistir bloque %s: %w", b.ID, err)
		}
	}
	uc.registry.Upsert(*b)
	return b, nil
}

func (uc *CatalogUseCase) buildBlock(in dto.UpsertBlockRequest) (*entity.Block, error) {
	verr := &domain.ValidationError{}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		verr.Add("id", "es obligatorio")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Add("name", "es obligatorio")
	}
	category := strings.TrimSpace(in.Category)
	if !slices.Contains(entity.BlockCategories, category) {
		verr.Add("category", "debe ser una de: "+strings.Join(entity.BlockCategories, ", "))
	}
	if in.Width == nil || !in.Width.IsPositive() {
		verr.Add("width", "debe ser un número positivo")
	}
	if in.Height == nil || !in.Height.IsPositive() {
		verr.Add("height", "debe ser un número positivo")
	}
	if in.Depth != nil && !in.Depth.IsPositive() {
		verr.Add("depth", "debe ser un número positivo")
	}
	for i, s := range in.PlanSymbols {
		if msg := checkShape(s); msg != "" {
			verr.Add(fmt.Sprintf("planSymbols[%d]", i), msg)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	symbols := in.PlanSymbols
	if symbols == nil {
		symbols = []entity.PlanShape{}
	}
	return &entity.Block{
		ID:           id,
		Name:         name,
		Type:         entity.BlockTypeFurniture,
		Category:     category,
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		SKU:          strings.TrimSpace(in.SKU),
		Tags:         in.Tags,
		ModuleClass:  strings.TrimSpace(in.ModuleClass),
		Width:        *in.Width,
		Height:       *in.Height,
		Depth:        in.Depth,
		Description:  strings.TrimSpace(in.Description),
		PlanSymbols:  symbols,
		UpdatedAt:    uc.now().UTC(),
	}, nil
}

func checkShape(s entity.PlanShape) string {
	switch s.Kind {
	case entity.ShapeRect:
		if s.Width <= 0 || s.Height <= 0 {
			return "rect requiere width y height positivos"
		}
	case entity.ShapeLine:
		if len(s.Points) != 4 {
			return "line requiere points = [x1, y1, x2, y2]"
		}
	case entity.ShapeCircle:
		if s.Radius <= 0 {
			return "circle requiere radius positivo"
		}
	default:
		return "kind debe ser rect, line o circle"
	}
	return ""
}
