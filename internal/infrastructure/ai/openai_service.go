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

var _ ports.PromptNormalizer = (*OpenAIService)(nil)

const (
	openAIBaseURL   = "https://api.openai.com"
	openAIMaxTokens = 120
)

// systemPrompt instrucción común a los proveedores remotos.
const systemPrompt = "You normalize user design commands. Fix spelling, keep intent concise. " +
	"Use verbs like create/add/move/paint/set. Keep colors and units. Return one short sentence."

// OpenAIService normaliza prompts con Chat Completions (temperature 0).
type OpenAIService struct {
	apiKey string
	model  string
	client *resty.Client
}

// NewOpenAIService construye el adaptador. model suele ser "gpt-4o-mini".
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		apiKey: apiKey,
		model:  model,
		client: resty.New().
			SetBaseURL(openAIBaseURL).
			SetTimeout(25*time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

// WithBaseURL apunta el cliente a otro host (tests con httptest).
func (s *OpenAIService) WithBaseURL(baseURL string) *OpenAIService {
	s.client.SetBaseURL(baseURL)
	return s
}

func (s *OpenAIService) Provider() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NormalizePrompt devuelve el contenido de la primera opción, recortado.
func (s *OpenAIService) NormalizePrompt(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("openai: OPENAI_API_KEY no configurada")
	}

	var out chatResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetBody(chatRequest{
			Model: s.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: prompt},
			},
			MaxTokens:   openAIMaxTokens,
			Temperature: 0,
		}).
		SetResult(&out).
		SetError(&out).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai: llamada HTTP: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("openai: HTTP %d: %s", resp.StatusCode(), out.Error.Message)
		}
		return "", fmt.Errorf("openai: HTTP %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
