package catalog_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kabs-design-api/internal/application/catalog"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

func block(id, name string) entity.Block {
	return entity.Block{ID: id, Name: name, Category: entity.CategoryFurniture, Width: decimal.NewFromInt(100), Height: decimal.NewFromInt(100)}
}

func TestRegistry_UpsertUltimaEscrituraGana(t *testing.T) {
	r := catalog.NewRegistry([]entity.Block{block("a", "A"), block("b", "B")})

	assert.False(t, r.Upsert(block("c", "C")))
	assert.True(t, r.Upsert(block("a", "A v2")))

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{list[0].ID, list[1].ID, list[2].ID})

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "A v2", got.Name)

	_, ok = r.Get("zzz")
	assert.False(t, ok)
}

func TestRegistry_ReplaceDeduplica(t *testing.T) {
	r := catalog.NewRegistry(nil)
	assert.Equal(t, 0, r.Len())

	r.Replace([]entity.Block{block("a", "A"), block("b", "B"), block("a", "A final")})
	assert.Equal(t, 2, r.Len())
	got, _ := r.Get("a")
	assert.Equal(t, "A final", got.Name)
}

func TestRegistry_SnapshotNoCambiaBajoLectores(t *testing.T) {
	r := catalog.NewRegistry([]entity.Block{block("a", "A")})
	before := r.List()

	r.Upsert(block("b", "B"))
	assert.Len(t, before, 1, "un snapshot ya leído no ve escrituras posteriores")
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_Concurrente(t *testing.T) {
	r := catalog.NewRegistry(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Upsert(block(fmt.Sprintf("b-%d", i%10), fmt.Sprintf("v%d", i)))
		}(i)
		go func() {
			defer wg.Done()
			for _, b := range r.List() {
				_, _ = r.Get(b.ID)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, r.Len())
}
