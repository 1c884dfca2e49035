package postgres_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/kabs-design-api/internal/application/auth"
	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/application/project"
	"github.com/jhoicas/kabs-design-api/internal/domain"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/postgres"
	"github.com/jhoicas/kabs-design-api/pkg/config"
	"github.com/jhoicas/kabs-design-api/pkg/jwt"
)

// Requiere una base desechable: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" || testing.Short() {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL:        url,
		MaxConns:           10,
		ConnectTimeout:     5 * time.Second,
		StatementTimeoutMs: 10000,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = postgres.ApplyMigrations(ctx, pool)
	require.NoError(t, err)
	return pool
}

type pgFixture struct {
	auth     *auth.AuthUseCase
	projects *project.ProjectUseCase
}

func newPgFixture(t *testing.T, pool *pgxpool.Pool) pgFixture {
	t.Helper()
	tokens, err := jwt.NewManager("integration-secret", "kabs-test", time.Hour)
	require.NoError(t, err)
	tx := postgres.NewTxRunner(pool)
	return pgFixture{
		auth: auth.NewAuthUseCase(postgres.NewUserRepository(pool), postgres.NewCompanyRepository(pool), tx, tokens).
			WithHashCost(bcrypt.MinCost),
		projects: project.NewProjectUseCase(
			postgres.NewProjectRepository(pool), postgres.NewProjectDataRepository(pool),
			postgres.NewPdfBackgroundRepository(pool), tx, nil, nil,
		),
	}
}

func (f pgFixture) identity(t *testing.T) entity.Identity {
	t.Helper()
	resp, err := f.auth.Register(context.Background(), dto.RegisterRequest{
		Email:       fmt.Sprintf("%s@test.local", uuid.NewString()),
		Password:    "secreto1",
		CompanyName: "Integración",
	})
	require.NoError(t, err)
	return entity.Identity{UserID: resp.User.ID, CompanyID: resp.Company.ID, Role: resp.User.Role}
}

func TestPostgres_AppendsConcurrentesSinHuecos(t *testing.T) {
	pool := testPool(t)
	f := newPgFixture(t, pool)
	ctx := context.Background()
	id := f.identity(t)

	p, err := f.projects.Create(ctx, id, dto.CreateProjectRequest{Name: "Concurrente"})
	require.NoError(t, err)

	const writers = 20
	versions := make([]int, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc := json.RawMessage(fmt.Sprintf(`{"writer":%d}`, i))
			out, err := f.projects.SaveData(ctx, id.CompanyID, p.ID, dto.SaveProjectDataRequest{Data: doc})
			if assert.NoError(t, err) {
				versions[i] = out.Version
			}
		}(i)
	}
	wg.Wait()

	sort.Ints(versions)
	for i, v := range versions {
		assert.Equal(t, i+1, v)
	}

	list, err := f.projects.List(ctx, id.CompanyID)
	require.NoError(t, err)
	require.Len(t, list.Projects, 1)
	assert.Equal(t, writers, list.Projects[0].VersionCount)
}

func TestPostgres_AislamientoYCascada(t *testing.T) {
	pool := testPool(t)
	f := newPgFixture(t, pool)
	ctx := context.Background()
	owner := f.identity(t)
	other := f.identity(t)

	p, err := f.projects.Create(ctx, owner, dto.CreateProjectRequest{
		Name: "Privado", Data: json.RawMessage(`{"rooms":[],"meta":{"units":"mm"}}`),
	})
	require.NoError(t, err)

	_, err = f.projects.Get(ctx, other.CompanyID, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.projects.LatestData(ctx, other.CompanyID, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	latest, err := f.projects.LatestData(ctx, owner.CompanyID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Version)
	assert.JSONEq(t, `{"rooms":[],"meta":{"units":"mm"}}`, string(latest.Data))

	require.NoError(t, f.projects.Delete(ctx, owner.CompanyID, p.ID))
	var remaining int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM project_data WHERE project_id = $1`, p.ID).Scan(&remaining))
	assert.Zero(t, remaining)
}

func TestPostgres_VersionesSonInmutables(t *testing.T) {
	pool := testPool(t)
	f := newPgFixture(t, pool)
	ctx := context.Background()
	id := f.identity(t)

	p, err := f.projects.Create(ctx, id, dto.CreateProjectRequest{Name: "Inmutable", Data: json.RawMessage(`{}`)})
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `UPDATE project_data SET data_json = '{"x":1}' WHERE project_id = $1`, p.ID)
	assert.Error(t, err)
}

func TestPostgres_CatalogoUpsert(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewCatalogRepository(pool)

	depth := decimal.RequireFromString("560.5")
	b := &entity.Block{
		ID: "it-" + uuid.NewString(), Name: "Base", Type: entity.BlockTypeFurniture, Category: entity.CategoryKitchen,
		Width: decimal.NewFromInt(600), Height: decimal.NewFromInt(720), Depth: &depth,
		PlanSymbols: []entity.PlanShape{{Kind: entity.ShapeRect, Width: 1, Height: 1}},
		UpdatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, b))
	b.Name = "Base v2"
	require.NoError(t, repo.Upsert(ctx, b))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	var found *entity.Block
	for _, got := range list {
		if got.ID == b.ID {
			found = got
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Base v2", found.Name)
	require.NotNil(t, found.Depth)
	assert.True(t, depth.Equal(*found.Depth))
	assert.Len(t, found.PlanSymbols, 1)

	_, _ = pool.Exec(ctx, `DELETE FROM catalog_blocks WHERE id = $1`, b.ID)
}
