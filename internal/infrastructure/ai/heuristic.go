package ai

import (
	"context"
	"regexp"
	"strings"

	"github.com/jhoicas/kabs-design-api/internal/application/ports"
	"github.com/jhoicas/kabs-design-api/pkg/config"
)

var _ ports.PromptNormalizer = (*HeuristicNormalizer)(nil)

type rewrite struct {
	re   *regexp.Regexp
	with string
}

// Sinónimos comunes a los verbos que entiende el intérprete del editor. El orden importa.
var rewrites = []rewrite{
	{regexp.MustCompile(`(?i)\b(make|build|draw)\b`), "create"},
	{regexp.MustCompile(`(?i)\b(color|paint)\b`), "paint"},
	{regexp.MustCompile(`(?i)\b(move|shift|relocate|place|put)\b`), "move"},
	{regexp.MustCompile(`(?i)\bset\b`), "set"},
	{regexp.MustCompile(`(?i)\bkitchen island\b`), "island"},
}

// HeuristicNormalizer reemplaza sinónimos sin llamar a ningún proveedor. Nunca falla.
type HeuristicNormalizer struct{}

func NewHeuristicNormalizer() *HeuristicNormalizer { return &HeuristicNormalizer{} }

func (HeuristicNormalizer) Provider() string { return "heuristic" }

func (HeuristicNormalizer) NormalizePrompt(_ context.Context, prompt string) (string, error) {
	out := prompt
	for _, r := range rewrites {
		out = r.re.ReplaceAllString(out, r.with)
	}
	return strings.TrimSpace(out), nil
}

// NewPromptNormalizer elige el proveedor según las claves configuradas: OpenAI, luego Anthropic, luego heurística.
func NewPromptNormalizer(cfg config.AIConfig) ports.PromptNormalizer {
	switch {
	case cfg.OpenAIAPIKey != "":
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case cfg.AnthropicAPIKey != "":
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		return NewHeuristicNormalizer()
	}
}
