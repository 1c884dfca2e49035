package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kabs-design-api/internal/infrastructure/ai"
	"github.com/jhoicas/kabs-design-api/pkg/config"
)

func TestHeuristicNormalizer(t *testing.T) {
	n := ai.NewHeuristicNormalizer()
	cases := []struct {
		in, want string
	}{
		{"make a kitchen island", "create a island"},
		{"Build wall 3m", "create wall 3m"},
		{"COLOR the door red", "paint the door red"},
		{"place sofa near window", "move sofa near window"},
		{"  SET height to 90cm  ", "set height to 90cm"},
		{"remake the plan", "remake the plan"},
	}
	for _, tc := range cases {
		got, err := n.NormalizePrompt(context.Background(), tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.Equal(t, "heuristic", n.Provider())
}

func TestNewPromptNormalizer_Seleccion(t *testing.T) {
	assert.Equal(t, "openai", ai.NewPromptNormalizer(config.AIConfig{OpenAIAPIKey: "k", AnthropicAPIKey: "a"}).Provider())
	assert.Equal(t, "anthropic", ai.NewPromptNormalizer(config.AIConfig{AnthropicAPIKey: "a"}).Provider())
	assert.Equal(t, "heuristic", ai.NewPromptNormalizer(config.AIConfig{}).Provider())
}

func TestOpenAIService_NormalizePrompt(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  create a blue wall  "}}]}`))
	}))
	defer srv.Close()

	svc := ai.NewOpenAIService("sk-test", "gpt-4o-mini").WithBaseURL(srv.URL)
	out, err := svc.NormalizePrompt(context.Background(), "maek a bleu wall")
	require.NoError(t, err)
	assert.Equal(t, "create a blue wall", out)
	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.EqualValues(t, 120, got["max_tokens"])
	assert.EqualValues(t, 0, got["temperature"])
}

func TestOpenAIService_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	_, err := ai.NewOpenAIService("sk-bad", "gpt-4o-mini").WithBaseURL(srv.URL).NormalizePrompt(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "bad key")
}

func TestOpenAIService_SinClave(t *testing.T) {
	_, err := ai.NewOpenAIService("", "gpt-4o-mini").NormalizePrompt(context.Background(), "x")
	assert.Error(t, err)
}

func TestAnthropicService_NormalizePrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "ak-test", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"move the sofa "},{"type":"text","text":"left"}]}`))
	}))
	defer srv.Close()

	out, err := ai.NewAnthropicService("ak-test", "claude-3-5-haiku-20241022").WithBaseURL(srv.URL).
		NormalizePrompt(context.Background(), "shift sofa lft")
	require.NoError(t, err)
	assert.Equal(t, "move the sofa left", out)
}

func TestAnthropicService_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"overloaded"}}`))
	}))
	defer srv.Close()

	_, err := ai.NewAnthropicService("ak", "m").WithBaseURL(srv.URL).NormalizePrompt(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded")
}
