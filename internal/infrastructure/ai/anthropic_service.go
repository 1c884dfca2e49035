package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/kabs-design-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa PromptNormalizer.
var _ ports.PromptNormalizer = (*AnthropicService)(nil)

const (
	anthropicBaseURL  = "https://api.anthropic.com"
	anthropicVersion  = "2023-06-01"
	anthropicMaxToken = 120
)

// AnthropicService adaptador que implementa PromptNormalizer usando la API Messages de Anthropic (Claude).
type AnthropicService struct {
	apiKey string
	model  string
	client *resty.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
		client: resty.New().
			SetBaseURL(anthropicBaseURL).
			SetTimeout(25*time.Second).
			SetHeader("Content-Type", "application/json").
			SetHeader("anthropic-version", anthropicVersion),
	}
}

// WithBaseURL apunta el cliente a otro host (tests con httptest).
func (s *AnthropicService) WithBaseURL(baseURL string) *AnthropicService {
	s.client.SetBaseURL(baseURL)
	return s
}

func (s *AnthropicService) Provider() string { return "anthropic" }

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NormalizePrompt envía el prompt como único mensaje de usuario y concatena los bloques de texto de la respuesta.
func (s *AnthropicService) NormalizePrompt(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("anthropic: ANTHROPIC_API_KEY no configurada")
	}

	var out anthropicResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", s.apiKey).
		SetBody(anthropicRequest{
			Model:     s.model,
			MaxTokens: anthropicMaxToken,
			System:    systemPrompt,
			Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&out).
		SetError(&out).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("anthropic: llamada HTTP: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("anthropic: HTTP %d: %s", resp.StatusCode(), out.Error.Message)
		}
		return "", fmt.Errorf("anthropic: HTTP %d", resp.StatusCode())
	}

	var sb strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
