package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kabs-design-api/internal/application/catalog"
	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/infrastructure/svg"
)

// CatalogHandler expone el catálogo global de bloques.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar bloques del catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/catalog/blocks [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Get godoc
// @Summary      Obtener bloque
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del bloque"
// @Success      200  {object}  dto.CatalogBlockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/blocks/{id} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	b, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CatalogBlockResponse{Block: *b})
}

// Symbol godoc
// @Summary      Símbolo de planta del bloque en SVG
// @Tags         catalog
// @Security     Bearer
// @Produce      image/svg+xml
// @Param        id   path  string  true  "ID del bloque"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/blocks/{id}/symbol.svg [get]
func (h *CatalogHandler) Symbol(c *fiber.Ctx) error {
	b, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return err
	}
	out, err := svg.RenderPlanSymbol(b)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Send(out)
}

// Upsert godoc
// @Summary      Publicar bloque (solo admin)
// @Description  Crea o reemplaza el bloque con ese id; visible para todas las empresas.
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertBlockRequest  true  "bloque"
// @Success      201   {object}  dto.CatalogBlockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/catalog/blocks [post]
func (h *CatalogHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertBlockRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	b, err := h.uc.Upsert(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CatalogBlockResponse{Block: *b})
}
