package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/application/usecase"
	"github.com/jhoicas/kabs-design-api/internal/domain"
)

type stubNormalizer struct {
	out      string
	err      error
	block    bool
	received string
}

func (s *stubNormalizer) NormalizePrompt(ctx context.Context, prompt string) (string, error) {
	s.received = prompt
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.out, s.err
}

func (s *stubNormalizer) Provider() string { return "stub" }

func TestInterpret_RecortaYDelega(t *testing.T) {
	stub := &stubNormalizer{out: " create a kitchen island "}
	uc := usecase.NewAIUseCase(stub, true, false)

	resp, err := uc.Interpret(context.Background(), dto.InterpretRequest{Prompt: "  make kitchen island  "})
	require.NoError(t, err)
	assert.Equal(t, "make kitchen island", stub.received)
	assert.Equal(t, "create a kitchen island", resp.NormalizedPrompt)
	assert.Equal(t, "stub", resp.Provider)
}

func TestInterpret_RespuestaVaciaDevuelveOriginal(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubNormalizer{out: "   "}, true, false)
	resp, err := uc.Interpret(context.Background(), dto.InterpretRequest{Prompt: "paint wall blue"})
	require.NoError(t, err)
	assert.Equal(t, "paint wall blue", resp.NormalizedPrompt)
}

func TestInterpret_PromptVacio(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubNormalizer{}, false, false)
	_, err := uc.Interpret(context.Background(), dto.InterpretRequest{Prompt: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInterpret_FalloDelProveedor(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubNormalizer{err: errors.New("HTTP 500")}, true, false)
	_, err := uc.Interpret(context.Background(), dto.InterpretRequest{Prompt: "move sofa"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestInterpret_Timeout(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubNormalizer{block: true}, true, false).WithTimeout(20 * time.Millisecond)
	_, err := uc.Interpret(context.Background(), dto.InterpretRequest{Prompt: "move sofa"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfig(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubNormalizer{}, false, true)
	assert.Equal(t, dto.AIConfigResponse{HasOpenAIKey: false, HasAnthropicKey: true, Provider: "stub"}, uc.Config())
}
