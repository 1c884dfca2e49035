// seed_catalog publica en catalog_blocks los bloques de un archivo JSON (mismo formato que
// GET /api/catalog/blocks: un arreglo o un objeto {"blocks": [...]}).
//
// Uso: go run ./cmd/seed_catalog [ruta/blocks.json]
// Sin argumento publica el catálogo por defecto embebido en el binario.
// Cada bloque pasa por la misma validación que POST /api/catalog/blocks.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/kabs-design-api/internal/application/catalog"
	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/postgres"
	"github.com/jhoicas/kabs-design-api/pkg/config"
)

func main() {
	blocks, err := readBlocks(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer bloques: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := catalog.NewCatalogUseCase(catalog.NewRegistry(nil), postgres.NewCatalogRepository(pool))
	failed := 0
	for _, in := range blocks {
		if _, err := uc.Upsert(ctx, in); err != nil {
			fmt.Fprintf(os.Stderr, "Bloque %q: %v\n", in.ID, err)
			failed++
			continue
		}
		fmt.Printf("Publicado %s\n", in.ID)
	}
	fmt.Printf("Bloques publicados: %d, con error: %d\n", len(blocks)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func readBlocks(args []string) ([]dto.UpsertBlockRequest, error) {
	var raw []byte
	if len(args) == 0 {
		defaults, err := catalog.DefaultBlocks()
		if err != nil {
			return nil, err
		}
		if raw, err = json.Marshal(defaults); err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		raw = data
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var wrapped struct {
			Blocks []dto.UpsertBlockRequest `json:"blocks"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, err
		}
		return wrapped.Blocks, nil
	}
	var list []dto.UpsertBlockRequest
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}
