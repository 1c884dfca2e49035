package project

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/domain"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

const maxNameLength = 255

// ProjectUseCase registro de proyectos, log de versiones y referencias a fondos PDF.
// Todas las operaciones reciben el companyID del contexto de identidad, nunca del cliente.
type ProjectUseCase struct {
	projects    repository.ProjectRepository
	versions    repository.ProjectDataRepository
	backgrounds repository.PdfBackgroundRepository
	tx          TxRunner
	exporter    SpreadsheetExporter
	renderer    SummaryRenderer
	now         func() time.Time
}

// NewProjectUseCase construye el caso de uso inyectando todas sus dependencias.
func NewProjectUseCase(
	projects repository.ProjectRepository,
	versions repository.ProjectDataRepository,
	backgrounds repository.PdfBackgroundRepository,
	tx TxRunner,
	exporter SpreadsheetExporter,
	renderer SummaryRenderer,
) *ProjectUseCase {
	return &ProjectUseCase{
		projects:    projects,
		versions:    versions,
		backgrounds: backgrounds,
		tx:          tx,
		exporter:    exporter,
		renderer:    renderer,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ProjectUseCase) WithClock(now func() time.Time) *ProjectUseCase {
	uc.now = now
	return uc
}

// List proyectos del tenant por updated_at descendente, con conteo de versiones.
func (uc *ProjectUseCase) List(ctx context.Context, companyID string) (*dto.ProjectListResponse, error) {
	list, err := uc.projects.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar proyectos: %w", err)
	}
	out := &dto.ProjectListResponse{Projects: make([]dto.ProjectSummaryResponse, 0, len(list))}
	for _, s := range list {
		out.Projects = append(out.Projects, dto.ProjectSummaryResponse{
			ProjectResponse: toProjectResponse(&s.Project),
			CreatedBy:       s.CreatedByEmail,
			VersionCount:    s.VersionCount,
		})
	}
	return out, nil
}

// Get proyecto con su última versión y sus fondos PDF.
// ErrNotFound tanto si no existe como si es de otro tenant.
func (uc *ProjectUseCase) Get(ctx context.Context, companyID, projectID string) (*dto.ProjectDetailResponse, error) {
	detail, err := uc.loadDetail(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProjectDetailResponse{
		ProjectResponse: toProjectResponse(&detail.Project),
		PdfBackgrounds:  toPdfBackgroundResponses(detail.PdfBackgrounds),
	}
	if detail.Latest != nil {
		out.Data = detail.Latest.Data
		out.Version = detail.Latest.Version
		at := detail.Latest.UpdatedAt
		out.DataUpdatedAt = &at
	}
	return out, nil
}

// Create crea el proyecto. Si trae data, la versión 1 se escribe en la misma transacción.
func (uc *ProjectUseCase) Create(ctx context.Context, id entity.Identity, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	p, initial, err := uc.buildProject(id, in)
	if err != nil {
		return nil, err
	}

	if initial == nil {
		if err := uc.projects.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("crear proyecto: %w", err)
		}
	} else {
		err := uc.tx.RunProject(ctx, func(projects repository.ProjectRepository, versions repository.ProjectDataRepository) error {
			if err := projects.Create(ctx, p); err != nil {
				return err
			}
			return versions.Create(ctx, initial)
		})
		if err != nil {
			return nil, fmt.Errorf("crear proyecto con datos iniciales: %w", err)
		}
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// Update actualización parcial de nombre/descripción. Un patch vacío devuelve el proyecto sin cambios.
func (uc *ProjectUseCase) Update(ctx context.Context, companyID, projectID string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	var name *string
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		verr := &domain.ValidationError{}
		checkName(verr, n)
		if err := verr.OrNil(); err != nil {
			return nil, err
		}
		name = &n
	}

	pid, ok := parseID(projectID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p, err := uc.projects.GetByID(ctx, companyID, pid)
	if err != nil {
		return nil, fmt.Errorf("obtener proyecto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if name == nil && in.Description == nil {
		resp := toProjectResponse(p)
		return &resp, nil
	}

	if name != nil {
		p.Name = *name
	}
	if in.Description != nil {
		p.Description = trimOptional(in.Description)
	}
	p.UpdatedAt = uc.timestamp()
	if err := uc.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizar proyecto: %w", err)
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// Delete elimina el proyecto y en cascada sus versiones y fondos PDF.
func (uc *ProjectUseCase) Delete(ctx context.Context, companyID, projectID string) error {
	pid, ok := parseID(projectID)
	if !ok {
		return domain.ErrNotFound
	}
	deleted, err := uc.projects.Delete(ctx, companyID, pid)
	if err != nil {
		return fmt.Errorf("eliminar proyecto: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// SaveData agrega un snapshot al log de versiones (version = MAX+1) y toca updated_at del proyecto.
// El proyecto se bloquea durante la transacción: dos guardados concurrentes nunca comparten número.
func (uc *ProjectUseCase) SaveData(ctx context.Context, companyID, projectID string, in dto.SaveProjectDataRequest) (*dto.SaveProjectDataResponse, error) {
	data, err := requireDocument("data", in.Data)
	if err != nil {
		return nil, err
	}
	pid, ok := parseID(projectID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var saved *entity.ProjectDataVersion
	err = uc.tx.RunProject(ctx, func(projects repository.ProjectRepository, versions repository.ProjectDataRepository) error {
		p, err := projects.GetForUpdate(ctx, companyID, pid)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		next, err := versions.NextVersion(ctx, pid)
		if err != nil {
			return err
		}
		now := uc.timestamp()
		v := &entity.ProjectDataVersion{
			ID:        uuid.NewString(),
			ProjectID: pid,
			Data:      data,
			Version:   next,
			UpdatedAt: now,
		}
		if err := versions.Create(ctx, v); err != nil {
			return err
		}
		if err := projects.Touch(ctx, companyID, pid, now); err != nil {
			return err
		}
		saved = v
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("guardar datos del proyecto: %w", err)
	}
	return &dto.SaveProjectDataResponse{
		Message: "Datos del proyecto guardados",
		Version: saved.Version,
		SavedAt: saved.UpdatedAt,
	}, nil
}

// LatestData última versión del documento; {data: null, version: 0} si aún no hay datos.
func (uc *ProjectUseCase) LatestData(ctx context.Context, companyID, projectID string) (*dto.ProjectDataResponse, error) {
	pid, err := uc.requireProject(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	v, err := uc.versions.Latest(ctx, companyID, pid)
	if err != nil {
		return nil, fmt.Errorf("última versión: %w", err)
	}
	if v == nil {
		return &dto.ProjectDataResponse{}, nil
	}
	at := v.UpdatedAt
	return &dto.ProjectDataResponse{Data: v.Data, Version: v.Version, UpdatedAt: &at}, nil
}

// AddPdfBackground registra la referencia a un PDF ya almacenado fuera del sistema.
func (uc *ProjectUseCase) AddPdfBackground(ctx context.Context, companyID, projectID string, in dto.CreatePdfBackgroundRequest) (*dto.PdfBackgroundResponse, error) {
	bg, err := uc.buildPdfBackground(in)
	if err != nil {
		return nil, err
	}
	pid, err := uc.requireProject(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	bg.ProjectID = pid
	if err := uc.backgrounds.Create(ctx, bg); err != nil {
		return nil, fmt.Errorf("registrar fondo PDF: %w", err)
	}
	resp := toPdfBackgroundResponse(bg)
	return &resp, nil
}

// ListPdfBackgrounds fondos PDF del proyecto, más recientes primero.
func (uc *ProjectUseCase) ListPdfBackgrounds(ctx context.Context, companyID, projectID string) ([]dto.PdfBackgroundResponse, error) {
	pid, err := uc.requireProject(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	list, err := uc.backgrounds.ListByProject(ctx, companyID, pid)
	if err != nil {
		return nil, fmt.Errorf("listar fondos PDF: %w", err)
	}
	return toPdfBackgroundResponses(list), nil
}

// ExportSpreadsheet planilla con los proyectos del tenant (solo admin; el rol lo verifica la capa HTTP).
func (uc *ProjectUseCase) ExportSpreadsheet(ctx context.Context, companyID string) ([]byte, error) {
	if uc.exporter == nil {
		return nil, errors.New("exportación de planillas no configurada")
	}
	list, err := uc.projects.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar proyectos: %w", err)
	}
	out, err := uc.exporter.ExportProjects(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("exportar planilla: %w", err)
	}
	return out, nil
}

// SummaryPDF resumen imprimible del proyecto (metadatos, última versión, fondos PDF).
func (uc *ProjectUseCase) SummaryPDF(ctx context.Context, companyID, projectID string) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", errors.New("resumen PDF no configurado")
	}
	detail, err := uc.loadDetail(ctx, companyID, projectID)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.renderer.RenderProjectSummary(ctx, detail)
	if err != nil {
		return nil, "", fmt.Errorf("generar resumen PDF: %w", err)
	}
	return out, fmt.Sprintf("proyecto-%s.pdf", detail.ID), nil
}

func (uc *ProjectUseCase) loadDetail(ctx context.Context, companyID, projectID string) (*entity.ProjectDetail, error) {
	pid, ok := parseID(projectID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p, err := uc.projects.GetByID(ctx, companyID, pid)
	if err != nil {
		return nil, fmt.Errorf("obtener proyecto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	latest, err := uc.versions.Latest(ctx, companyID, pid)
	if err != nil {
		return nil, fmt.Errorf("última versión: %w", err)
	}
	bgs, err := uc.backgrounds.ListByProject(ctx, companyID, pid)
	if err != nil {
		return nil, fmt.Errorf("listar fondos PDF: %w", err)
	}
	return &entity.ProjectDetail{Project: *p, Latest: latest, PdfBackgrounds: bgs}, nil
}

// requireProject valida el id y que el proyecto sea del tenant; devuelve el id normalizado.
func (uc *ProjectUseCase) requireProject(ctx context.Context, companyID, projectID string) (string, error) {
	pid, ok := parseID(projectID)
	if !ok {
		return "", domain.ErrNotFound
	}
	p, err := uc.projects.GetByID(ctx, companyID, pid)
	if err != nil {
		return "", fmt.Errorf("obtener proyecto: %w", err)
	}
	if p == nil {
		return "", domain.ErrNotFound
	}
	return pid, nil
}

func (uc *ProjectUseCase) buildProject(id entity.Identity, in dto.CreateProjectRequest) (*entity.Project, *entity.ProjectDataVersion, error) {
	verr := &domain.ValidationError{}

	name := strings.TrimSpace(in.Name)
	checkName(verr, name)

	var data json.RawMessage
	var fromData struct {
		DesignMode *string `json:"design_mode"`
		IsDraft    *bool   `json:"is_draft"`
		FolderID   *string `json:"folder_id"`
	}
	if hasDocument(in.Data) {
		if !json.Valid(in.Data) {
			verr.Add("data", "no es JSON válido")
		} else {
			data = in.Data
			// Solo se leen las opciones si data es un objeto; un tipo distinto en el campo se ignora.
			if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
				var probe map[string]json.RawMessage
				if json.Unmarshal(data, &probe) == nil {
					_ = json.Unmarshal(probe["design_mode"], &fromData.DesignMode)
					_ = json.Unmarshal(probe["is_draft"], &fromData.IsDraft)
					_ = json.Unmarshal(probe["folder_id"], &fromData.FolderID)
				}
			}
		}
	}

	designMode := entity.DesignMode2D
	switch {
	case in.DesignMode != nil:
		designMode = strings.TrimSpace(*in.DesignMode)
	case fromData.DesignMode != nil && *fromData.DesignMode != "":
		designMode = *fromData.DesignMode
	}
	if designMode != entity.DesignMode2D && designMode != entity.DesignMode3D {
		verr.Add("design_mode", "debe ser 2d o 3d")
	}

	isDraft := true
	switch {
	case in.IsDraft != nil:
		isDraft = *in.IsDraft
	case fromData.IsDraft != nil:
		isDraft = *fromData.IsDraft
	}

	folderID := trimOptional(in.FolderID)
	if folderID == nil {
		folderID = trimOptional(fromData.FolderID)
	}
	if folderID != nil {
		parsed, ok := parseID(*folderID)
		if !ok {
			verr.Add("folder_id", "debe ser un UUID")
		} else {
			folderID = &parsed
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, nil, err
	}

	now := uc.timestamp()
	userID := id.UserID
	p := &entity.Project{
		ID:          uuid.NewString(),
		CompanyID:   id.CompanyID,
		UserID:      &userID,
		Name:        name,
		Description: trimOptional(in.Description),
		DesignMode:  designMode,
		IsDraft:     isDraft,
		FolderID:    folderID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if data == nil {
		return p, nil, nil
	}
	return p, &entity.ProjectDataVersion{
		ID:        uuid.NewString(),
		ProjectID: p.ID,
		Data:      data,
		Version:   1,
		UpdatedAt: now,
	}, nil
}

func (uc *ProjectUseCase) buildPdfBackground(in dto.CreatePdfBackgroundRequest) (*entity.PdfBackground, error) {
	verr := &domain.ValidationError{}
	fileURL := strings.TrimSpace(in.FileURL)
	if u, err := url.Parse(fileURL); fileURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		verr.Add("file_url", "debe ser una URL absoluta")
	}
	fileName := strings.TrimSpace(in.FileName)
	if fileName == "" {
		verr.Add("file_name", "es obligatorio")
	}
	pageCount := 1
	if in.PageCount != nil {
		pageCount = *in.PageCount
		if pageCount < 1 {
			verr.Add("page_count", "debe ser mayor que 0")
		}
	}
	metadata := json.RawMessage(`{}`)
	if hasDocument(in.Metadata) {
		var obj map[string]any
		if err := json.Unmarshal(in.Metadata, &obj); err != nil {
			verr.Add("metadata", "debe ser un objeto JSON")
		} else {
			metadata = in.Metadata
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &entity.PdfBackground{
		ID:        uuid.NewString(),
		FileURL:   fileURL,
		FileName:  fileName,
		PageCount: pageCount,
		Metadata:  metadata,
		CreatedAt: uc.timestamp(),
	}, nil
}

// timestamp trunca a microsegundos, la resolución de TIMESTAMPTZ.
func (uc *ProjectUseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Microsecond)
}

func checkName(verr *domain.ValidationError, name string) {
	switch {
	case name == "":
		verr.Add("name", "el nombre del proyecto es obligatorio")
	case utf8.RuneCountInString(name) > maxNameLength:
		verr.Add("name", fmt.Sprintf("máximo %d caracteres", maxNameLength))
	}
}

func requireDocument(field string, raw json.RawMessage) (json.RawMessage, error) {
	if !hasDocument(raw) {
		return nil, domain.NewValidationError(field, "los datos del proyecto son obligatorios")
	}
	if !json.Valid(raw) {
		return nil, domain.NewValidationError(field, "no es JSON válido")
	}
	return raw, nil
}

func hasDocument(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// parseID normaliza un UUID. Un id que no es UUID no puede existir: el llamador responde NotFound.
func parseID(id string) (string, bool) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toProjectResponse(p *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		DesignMode:  p.DesignMode,
		IsDraft:     p.IsDraft,
		FolderID:    p.FolderID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPdfBackgroundResponse(bg *entity.PdfBackground) dto.PdfBackgroundResponse {
	return dto.PdfBackgroundResponse{
		ID:        bg.ID,
		ProjectID: bg.ProjectID,
		FileURL:   bg.FileURL,
		FileName:  bg.FileName,
		PageCount: bg.PageCount,
		Metadata:  bg.Metadata,
		CreatedAt: bg.CreatedAt,
	}
}

func toPdfBackgroundResponses(list []*entity.PdfBackground) []dto.PdfBackgroundResponse {
	out := make([]dto.PdfBackgroundResponse, 0, len(list))
	for _, bg := range list {
		out = append(out, toPdfBackgroundResponse(bg))
	}
	return out
}
