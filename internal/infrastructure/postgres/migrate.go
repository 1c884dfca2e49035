package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ApplyMigrations aplica en orden los *.up.sql embebidos que no figuren en schema_migrations.
// Cada archivo corre en su propia transacción junto con su registro.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return nil, err
	}
	files, err := migrationFiles(".up.sql")
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range files {
		version := strings.TrimSuffix(name, ".up.sql")
		migrated, err := isMigrated(ctx, pool, version)
		if err != nil {
			return applied, err
		}
		if migrated {
			continue
		}
		if err := runMigration(ctx, pool, name, func(tx Querier) error {
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations(version) VALUES($1)`, version)
			return err
		}); err != nil {
			return applied, err
		}
		applied = append(applied, version)
	}
	return applied, nil
}

// RollbackMigration revierte la última migración aplicada usando su *.down.sql.
// Devuelve "" si no había nada que revertir.
func RollbackMigration(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return "", err
	}
	var version string
	err := pool.QueryRow(ctx, `SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", wrapErr("última migración", err)
	}
	if err := runMigration(ctx, pool, version+".down.sql", func(tx Querier) error {
		_, err := tx.Exec(ctx, `DELETE FROM schema_migrations WHERE version = $1`, version)
		return err
	}); err != nil {
		return "", err
	}
	return version, nil
}

func runMigration(ctx context.Context, pool *pgxpool.Pool, name string, record func(tx Querier) error) error {
	contents, err := migrationsFS.ReadFile("migrations/" + name)
	if err != nil {
		return fmt.Errorf("leer migración %s: %w", name, err)
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return wrapErr("begin migración "+name, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, string(contents)); err != nil {
		return wrapErr("ejecutar migración "+name, err)
	}
	if err := record(tx); err != nil {
		return wrapErr("registrar migración "+name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapErr("commit migración "+name, err)
	}
	return nil
}

func migrationFiles(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func ensureMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return wrapErr("crear schema_migrations", err)
}

func isMigrated(ctx context.Context, pool *pgxpool.Pool, version string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, wrapErr("consultar migración "+version, err)
	}
	return exists, nil
}
