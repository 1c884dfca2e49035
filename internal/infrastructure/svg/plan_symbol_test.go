package svg_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/svg"
)

func block() *entity.Block {
	return &entity.Block{
		ID: "sink", Name: "Sink", Type: entity.BlockTypeFurniture, Category: entity.CategoryKitchen,
		Width: decimal.NewFromInt(600), Height: decimal.NewFromInt(400),
		PlanSymbols: []entity.PlanShape{
			{Kind: entity.ShapeRect, X: 0, Y: 0, Width: 1, Height: 1, CornerRadius: 0.05},
			{Kind: entity.ShapeCircle, X: 0.5, Y: 0.5, Radius: 0.25, Fill: "detail"},
			{Kind: entity.ShapeLine, Points: []float64{0, 0.5, 1, 0.5}, Stroke: "#ff0000", Dash: []float64{0.02, 0.03}},
		},
	}
}

func TestRenderPlanSymbol(t *testing.T) {
	out, err := svg.RenderPlanSymbol(block())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("svg")
	require.NotNil(t, root)
	assert.Equal(t, "0 0 600 400", root.SelectAttrValue("viewBox", ""))
	assert.Equal(t, "Sink", root.SelectElement("title").Text())

	g := root.SelectElement("g")
	require.NotNil(t, g)

	rect := g.SelectElement("rect")
	require.NotNil(t, rect)
	assert.Equal(t, "600", rect.SelectAttrValue("width", ""))
	assert.Equal(t, "20", rect.SelectAttrValue("rx", ""))

	circle := g.SelectElement("circle")
	require.NotNil(t, circle)
	assert.Equal(t, "300", circle.SelectAttrValue("cx", ""))
	assert.Equal(t, "100", circle.SelectAttrValue("r", ""))
	assert.Equal(t, "#8a8a8a", circle.SelectAttrValue("fill", ""))

	line := g.SelectElement("line")
	require.NotNil(t, line)
	assert.Equal(t, "200", line.SelectAttrValue("y1", ""))
	assert.Equal(t, "#ff0000", line.SelectAttrValue("stroke", ""))
	assert.Equal(t, "8 12", line.SelectAttrValue("stroke-dasharray", ""))
}

func TestRenderPlanSymbol_Errores(t *testing.T) {
	_, err := svg.RenderPlanSymbol(nil)
	assert.Error(t, err)

	b := block()
	b.Width = decimal.Zero
	_, err = svg.RenderPlanSymbol(b)
	assert.Error(t, err)

	b = block()
	b.PlanSymbols = []entity.PlanShape{{Kind: "polygon"}}
	_, err = svg.RenderPlanSymbol(b)
	assert.Error(t, err)

	b = block()
	b.PlanSymbols = []entity.PlanShape{{Kind: entity.ShapeLine, Points: []float64{0, 1}}}
	_, err = svg.RenderPlanSymbol(b)
	assert.Error(t, err)
}
