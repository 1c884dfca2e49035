package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/kabs-design-api/internal/application/auth"
	"github.com/jhoicas/kabs-design-api/internal/application/project"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

var (
	_ auth.TxRunner    = (*TxRunner)(nil)
	_ project.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistration crea empresa y usuario administrador en una sola transacción.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	users repository.UserRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCompanyRepository(tx), NewUserRepository(tx))
	})
}

// RunProject ejecuta fn con repos de proyecto y versiones atados a la misma tx.
// Los bloqueos tomados con GetForUpdate se liberan al hacer Commit o Rollback.
func (r *TxRunner) RunProject(ctx context.Context, fn func(
	projects repository.ProjectRepository,
	versions repository.ProjectDataRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewProjectRepository(tx), NewProjectDataRepository(tx))
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapErr("commit transaction", err)
	}
	return nil
}
