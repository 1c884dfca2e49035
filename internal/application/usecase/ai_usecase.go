package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/application/ports"
	"github.com/jhoicas/kabs-design-api/internal/domain"
)

// maxPromptLength evita enviar textos enormes al proveedor.
const maxPromptLength = 2000

// AIUseCase orquesta la normalización de prompts del editor.
// Aplica un timeout de 10 segundos en cada llamada al proveedor.
type AIUseCase struct {
	normalizer      ports.PromptNormalizer
	hasOpenAIKey    bool
	hasAnthropicKey bool
	timeout         time.Duration
}

// NewAIUseCase construye el caso de uso inyectando el normalizador ya seleccionado.
func NewAIUseCase(normalizer ports.PromptNormalizer, hasOpenAIKey, hasAnthropicKey bool) *AIUseCase {
	return &AIUseCase{
		normalizer:      normalizer,
		hasOpenAIKey:    hasOpenAIKey,
		hasAnthropicKey: hasAnthropicKey,
		timeout:         10 * time.Second,
	}
}

// WithTimeout ajusta el timeout por llamada (tests).
func (uc *AIUseCase) WithTimeout(d time.Duration) *AIUseCase {
	uc.timeout = d
	return uc
}

// Config informa qué proveedores están configurados, sin exponer las claves.
func (uc *AIUseCase) Config() dto.AIConfigResponse {
	return dto.AIConfigResponse{
		HasOpenAIKey:    uc.hasOpenAIKey,
		HasAnthropicKey: uc.hasAnthropicKey,
		Provider:        uc.normalizer.Provider(),
	}
}

// Interpret valida el prompt y delega al proveedor. Un fallo del proveedor se reporta como ErrUpstream.
func (uc *AIUseCase) Interpret(ctx context.Context, req dto.InterpretRequest) (*dto.InterpretResponse, error) {
	text := strings.TrimSpace(req.Prompt)
	if text == "" {
		return nil, domain.NewValidationError("prompt", "es obligatorio")
	}
	if len([]rune(text)) > maxPromptLength {
		return nil, domain.NewValidationError("prompt", fmt.Sprintf("máximo %d caracteres", maxPromptLength))
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	normalized, err := uc.normalizer.NormalizePrompt(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrUpstream, uc.normalizer.Provider(), err)
	}
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		normalized = text
	}
	return &dto.InterpretResponse{NormalizedPrompt: normalized, Provider: uc.normalizer.Provider()}, nil
}
