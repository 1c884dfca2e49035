package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas del catálogo de bloques.
const (
	CategoryKitchen    = "kitchen"
	CategoryBathroom   = "bathroom"
	CategoryFurniture  = "furniture"
	CategoryElectrical = "electrical"
	CategoryPlumbing   = "plumbing"
)

// BlockCategories conjunto de categorías aceptadas al publicar un bloque.
var BlockCategories = []string{CategoryKitchen, CategoryBathroom, CategoryFurniture, CategoryElectrical, CategoryPlumbing}

// Las dimensiones viajan como número JSON, igual que en el documento del editor.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// BlockTypeFurniture único tipo de bloque que maneja el editor.
const BlockTypeFurniture = "furniture"

// Block definición de un bloque del catálogo (mueble, artefacto). Dimensiones en milímetros.
type Block struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Category     string           `json:"category"`
	Manufacturer string           `json:"manufacturer,omitempty"`
	SKU          string           `json:"sku,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	ModuleClass  string           `json:"moduleClass,omitempty"` // base, wall, tall, vanity, corner, appliance, panel, custom
	Width        decimal.Decimal  `json:"width"`
	Height       decimal.Decimal  `json:"height"`
	Depth        *decimal.Decimal `json:"depth,omitempty"`
	Description  string           `json:"description,omitempty"`
	PlanSymbols  []PlanShape      `json:"planSymbols"`
	UpdatedAt    time.Time        `json:"-"`
}

// Tipos de figura de un símbolo de planta.
const (
	ShapeRect   = "rect"
	ShapeLine   = "line"
	ShapeCircle = "circle"
)

// PlanShape figura primitiva del símbolo de planta, en coordenadas relativas (0..1) al bloque.
// Las líneas usan Points = [x1, y1, x2, y2]. Stroke y Fill son tokens de tema ("base", "detail")
// o colores literales; el cliente los resuelve.
type PlanShape struct {
	Kind         string    `json:"kind"`
	X            float64   `json:"x"`
	Y            float64   `json:"y"`
	Width        float64   `json:"width,omitempty"`
	Height       float64   `json:"height,omitempty"`
	Radius       float64   `json:"radius,omitempty"`
	CornerRadius float64   `json:"cornerRadius,omitempty"`
	Points       []float64 `json:"points,omitempty"`
	Stroke       string    `json:"stroke,omitempty"`
	StrokeWidth  float64   `json:"strokeWidth,omitempty"`
	Fill         string    `json:"fill,omitempty"`
	Dash         []float64 `json:"dash,omitempty"`
}
