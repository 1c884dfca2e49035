package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/application/project"
)

// ProjectHandler expone proyectos, versiones del documento y fondos PDF del tenant del token.
type ProjectHandler struct {
	uc *project.ProjectUseCase
}

func NewProjectHandler(uc *project.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List godoc
// @Summary      Listar proyectos
// @Description  Proyectos de la empresa con cantidad de versiones, ordenados por última modificación.
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProjectListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener proyecto
// @Description  Incluye el documento de la última versión (data null y version 0 si no hay) y los fondos PDF.
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectDetailEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ProjectDetailEnvelope{Project: *out})
}

// Create godoc
// @Summary      Crear proyecto
// @Description  Si el cuerpo trae data, se guarda como versión 1 en la misma transacción.
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "name obligatorio"
// @Success      201   {object}  dto.ProjectEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProjectEnvelope{Project: *out})
}

// Update godoc
// @Summary      Actualizar nombre o descripción
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del proyecto"
// @Param        body  body  dto.UpdateProjectRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ProjectEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProjectEnvelope{Project: *out})
}

// Delete godoc
// @Summary      Eliminar proyecto
// @Description  Borra también sus versiones y fondos PDF.
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "proyecto eliminado"})
}

// SaveData godoc
// @Summary      Guardar nueva versión del documento
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del proyecto"
// @Param        body  body  dto.SaveProjectDataRequest  true  "documento completo"
// @Success      201   {object}  dto.SaveProjectDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/data [post]
func (h *ProjectHandler) SaveData(c *fiber.Ctx) error {
	var in dto.SaveProjectDataRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.SaveData(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// LatestData godoc
// @Summary      Última versión del documento
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/data [get]
func (h *ProjectHandler) LatestData(c *fiber.Ctx) error {
	out, err := h.uc.LatestData(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AddPdfBackground godoc
// @Summary      Registrar fondo PDF
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del proyecto"
// @Param        body  body  dto.CreatePdfBackgroundRequest  true  "referencia al archivo"
// @Success      201   {object}  dto.PdfBackgroundEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/pdf-backgrounds [post]
func (h *ProjectHandler) AddPdfBackground(c *fiber.Ctx) error {
	var in dto.CreatePdfBackgroundRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AddPdfBackground(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PdfBackgroundEnvelope{PdfBackground: *out})
}

// ListPdfBackgrounds godoc
// @Summary      Listar fondos PDF
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.PdfBackgroundListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/pdf-backgrounds [get]
func (h *ProjectHandler) ListPdfBackgrounds(c *fiber.Ctx) error {
	out, err := h.uc.ListPdfBackgrounds(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.PdfBackgroundListResponse{PdfBackgrounds: out})
}

// ExportSpreadsheet godoc
// @Summary      Exportar proyectos a Excel
// @Tags         projects
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/projects/export.xlsx [get]
func (h *ProjectHandler) ExportSpreadsheet(c *fiber.Ctx) error {
	out, err := h.uc.ExportSpreadsheet(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Attachment("proyectos.xlsx")
	return c.Send(out)
}

// SummaryPDF godoc
// @Summary      Resumen del proyecto en PDF
// @Tags         projects
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/summary.pdf [get]
func (h *ProjectHandler) SummaryPDF(c *fiber.Ctx) error {
	out, filename, err := h.uc.SummaryPDF(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(out)
}
