// Package svg dibuja el símbolo de planta de un bloque del catálogo como documento SVG.
package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

// Colores por defecto de los tokens de tema; el cliente puede reinterpretarlos.
var themeColors = map[string]string{
	"base":   "#333333",
	"detail": "#8a8a8a",
	"accent": "#00467f",
}

const defaultStrokeWidth = 0.01

// RenderPlanSymbol devuelve el SVG del bloque en milímetros (viewBox = ancho x alto del bloque).
// Las coordenadas relativas (0..1) de cada figura se escalan a las dimensiones del bloque.
func RenderPlanSymbol(b *entity.Block) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("svg: bloque nulo")
	}
	w, _ := b.Width.Float64()
	h, _ := b.Height.Float64()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg: dimensiones inválidas %vx%v", w, h)
	}
	unit := math.Min(w, h)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("viewBox", "0 0 "+num(w)+" "+num(h))
	root.CreateAttr("width", num(w)+"mm")
	root.CreateAttr("height", num(h)+"mm")
	root.CreateAttr("data-block-id", b.ID)
	root.CreateElement("title").SetText(b.Name)

	g := root.CreateElement("g")
	g.CreateAttr("fill", "none")
	g.CreateAttr("stroke", themeColors["base"])

	for i, s := range b.PlanSymbols {
		var el *etree.Element
		switch s.Kind {
		case entity.ShapeRect:
			el = g.CreateElement("rect")
			el.CreateAttr("x", num(s.X*w))
			el.CreateAttr("y", num(s.Y*h))
			el.CreateAttr("width", num(s.Width*w))
			el.CreateAttr("height", num(s.Height*h))
			if s.CornerRadius > 0 {
				el.CreateAttr("rx", num(s.CornerRadius*unit))
			}
		case entity.ShapeLine:
			if len(s.Points) != 4 {
				return nil, fmt.Errorf("svg: figura %d: una línea necesita 4 puntos", i)
			}
			el = g.CreateElement("line")
			el.CreateAttr("x1", num(s.Points[0]*w))
			el.CreateAttr("y1", num(s.Points[1]*h))
			el.CreateAttr("x2", num(s.Points[2]*w))
			el.CreateAttr("y2", num(s.Points[3]*h))
		case entity.ShapeCircle:
			el = g.CreateElement("circle")
			el.CreateAttr("cx", num(s.X*w))
			el.CreateAttr("cy", num(s.Y*h))
			el.CreateAttr("r", num(s.Radius*unit))
		default:
			return nil, fmt.Errorf("svg: figura %d: tipo desconocido %q", i, s.Kind)
		}
		applyStyle(el, s, unit)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("svg: serializar: %w", err)
	}
	return out, nil
}

func applyStyle(el *etree.Element, s entity.PlanShape, unit float64) {
	if s.Stroke != "" {
		el.CreateAttr("stroke", color(s.Stroke))
	}
	if s.Fill != "" {
		el.CreateAttr("fill", color(s.Fill))
		el.CreateAttr("fill-opacity", "0.15")
	}
	sw := s.StrokeWidth
	if sw <= 0 {
		sw = defaultStrokeWidth
	}
	el.CreateAttr("stroke-width", num(sw*unit))
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = num(d * unit)
		}
		el.CreateAttr("stroke-dasharray", strings.Join(parts, " "))
	}
}

func color(token string) string {
	if c, ok := themeColors[token]; ok {
		return c
	}
	return token
}

// num formatea con hasta 2 decimales y sin ceros sobrantes.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
