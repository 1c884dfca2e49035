package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kabs-design-api/internal/application/catalog"
	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/domain"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/memory"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestDefaultBlocks(t *testing.T) {
	blocks, err := catalog.DefaultBlocks()
	require.NoError(t, err)
	require.Len(t, blocks, 8)

	ids := map[string]entity.Block{}
	for _, b := range blocks {
		ids[b.ID] = b
		assert.NotEmpty(t, b.PlanSymbols, b.ID)
		assert.Contains(t, entity.BlockCategories, b.Category, b.ID)
	}
	cabinet := ids["base-cabinet"]
	require.NotNil(t, cabinet.Depth)
	assert.True(t, cabinet.Depth.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, "base", cabinet.ModuleClass)
	assert.Equal(t, []float64{0.5, 0, 0.5, 1}, cabinet.PlanSymbols[1].Points)
}

func TestLoad_PersistidosGananSobreDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	custom := &entity.Block{
		ID: "wc", Name: "WC suspendido", Type: entity.BlockTypeFurniture, Category: entity.CategoryBathroom,
		Width: decimal.NewFromInt(360), Height: decimal.NewFromInt(540),
	}
	require.NoError(t, store.Catalog().Upsert(ctx, custom))

	uc := catalog.NewCatalogUseCase(catalog.NewRegistry(nil), store.Catalog())
	n, err := uc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	wc, err := uc.Get("wc")
	require.NoError(t, err)
	assert.Equal(t, "WC suspendido", wc.Name)
}

func TestUpsert_PersisteYPublica(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uc := catalog.NewCatalogUseCase(catalog.NewRegistry(nil), store.Catalog())
	_, err := uc.Load(ctx)
	require.NoError(t, err)

	b, err := uc.Upsert(ctx, dto.UpsertBlockRequest{
		ID: "island", Name: "Kitchen Island", Category: entity.CategoryKitchen,
		Width: decPtr(1800), Height: decPtr(900),
		PlanSymbols: []entity.PlanShape{{Kind: entity.ShapeRect, Width: 1, Height: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BlockTypeFurniture, b.Type)

	assert.Len(t, uc.List().Blocks, 9)
	stored, err := store.Catalog().List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "island", stored[0].ID)

	_, err = uc.Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpsert_Validaciones(t *testing.T) {
	uc := catalog.NewCatalogUseCase(catalog.NewRegistry(nil), nil)

	_, err := uc.Upsert(context.Background(), dto.UpsertBlockRequest{
		Category:    "garden",
		Width:       decPtr(-1),
		PlanSymbols: []entity.PlanShape{{Kind: "triangle"}, {Kind: entity.ShapeLine, Points: []float64{0, 0}}},
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{"id", "name", "category", "width", "height", "planSymbols[0]", "planSymbols[1]"} {
		assert.True(t, fields[want], want)
	}
	assert.Equal(t, 0, len(uc.List().Blocks))
}
