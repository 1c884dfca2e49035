package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/application/usecase"
)

// AIHandler maneja la normalización de comandos de diseño.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Config godoc
// @Summary      Proveedores de IA configurados
// @Tags         ai
// @Produce      json
// @Success      200  {object}  dto.AIConfigResponse
// @Router       /api/ai/config [get]
func (h *AIHandler) Config(c *fiber.Ctx) error {
	return c.JSON(h.uc.Config())
}

// Interpret godoc
// @Summary      Normalizar comando de diseño
// @Description  Corrige ortografía y unifica verbos. Sin claves configuradas usa una heurística local.
// @Description  Timeout interno de 10 s.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InterpretRequest  true  "prompt"
// @Success      200   {object}  dto.InterpretResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/interpret [post]
func (h *AIHandler) Interpret(c *fiber.Ctx) error {
	var in dto.InterpretRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Interpret(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
