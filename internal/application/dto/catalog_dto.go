package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

// UpsertBlockRequest publica o reemplaza un bloque del catálogo (last-write-wins por id).
// Width/Height aceptan número o string numérico.
type UpsertBlockRequest struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Manufacturer string             `json:"manufacturer,omitempty"`
	SKU          string             `json:"sku,omitempty"`
	Tags         []string           `json:"tags,omitempty"`
	ModuleClass  string             `json:"moduleClass,omitempty"`
	Width        *decimal.Decimal   `json:"width" swaggertype:"number"`
	Height       *decimal.Decimal   `json:"height" swaggertype:"number"`
	Depth        *decimal.Decimal   `json:"depth,omitempty" swaggertype:"number"`
	Description  string             `json:"description,omitempty"`
	PlanSymbols  []entity.PlanShape `json:"planSymbols,omitempty"`
}

// CatalogListResponse catálogo completo vigente.
type CatalogListResponse struct {
	Blocks []entity.Block `json:"blocks"`
}

// CatalogBlockResponse un bloque del catálogo.
type CatalogBlockResponse struct {
	Block entity.Block `json:"block"`
}
