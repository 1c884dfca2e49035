// migrate aplica o revierte las migraciones embebidas en el binario.
//
// Uso: go run ./cmd/migrate [up|down]
// Por defecto ejecuta "up". "down" revierte solo la última migración aplicada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/kabs-design-api/internal/infrastructure/postgres"
	"github.com/jhoicas/kabs-design-api/pkg/config"
	"github.com/jhoicas/kabs-design-api/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	switch cmd {
	case "up":
		applied, err := postgres.ApplyMigrations(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		if len(applied) == 0 {
			log.Info().Msg("sin migraciones pendientes")
			return
		}
		log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
	case "down":
		version, err := postgres.RollbackMigration(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("revertir migración")
		}
		if version == "" {
			log.Info().Msg("no hay migraciones aplicadas")
			return
		}
		log.Info().Str("version", version).Msg("migración revertida")
	default:
		fmt.Fprintf(os.Stderr, "Comando desconocido %q (use up o down)\n", cmd)
		os.Exit(2)
	}
}
