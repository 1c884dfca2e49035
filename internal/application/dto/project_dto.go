package dto

import (
	"encoding/json"
	"time"
)

// CreateProjectRequest entrada para crear un proyecto. Si Data viene, se guarda como versión 1.
// DesignMode, IsDraft y FolderID también se aceptan dentro de Data (data.design_mode, ...).
type CreateProjectRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	DesignMode  *string         `json:"design_mode,omitempty"`
	IsDraft     *bool           `json:"is_draft,omitempty"`
	FolderID    *string         `json:"folder_id,omitempty"`
	Data        json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// UpdateProjectRequest actualización parcial; los campos nil no cambian.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SaveProjectDataRequest snapshot completo del documento.
type SaveProjectDataRequest struct {
	Data json.RawMessage `json:"data" swaggertype:"object"`
}

// ProjectResponse metadatos de un proyecto.
type ProjectResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	UserID      *string   `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	DesignMode  string    `json:"design_mode"`
	IsDraft     bool      `json:"is_draft"`
	FolderID    *string   `json:"folder_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectSummaryResponse fila del listado.
type ProjectSummaryResponse struct {
	ProjectResponse
	CreatedBy    *string `json:"created_by"`
	VersionCount int     `json:"version_count"`
}

// ProjectListResponse listado de proyectos del tenant.
type ProjectListResponse struct {
	Projects []ProjectSummaryResponse `json:"projects"`
}

// ProjectDetailResponse proyecto + última versión (data null y version 0 si no hay) + fondos PDF.
type ProjectDetailResponse struct {
	ProjectResponse
	Data           json.RawMessage         `json:"data" swaggertype:"object"`
	Version        int                     `json:"version"`
	DataUpdatedAt  *time.Time              `json:"data_updated_at"`
	PdfBackgrounds []PdfBackgroundResponse `json:"pdf_backgrounds"`
}

// SaveProjectDataResponse resultado de un append al log de versiones.
type SaveProjectDataResponse struct {
	Message string    `json:"message"`
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// ProjectDataResponse última versión del documento.
type ProjectDataResponse struct {
	Data      json.RawMessage `json:"data" swaggertype:"object"`
	Version   int             `json:"version"`
	UpdatedAt *time.Time      `json:"updated_at"`
}

// CreatePdfBackgroundRequest referencia a un PDF ya subido a un almacenamiento externo.
type CreatePdfBackgroundRequest struct {
	FileURL   string          `json:"file_url"`
	FileName  string          `json:"file_name"`
	PageCount *int            `json:"page_count,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// PdfBackgroundResponse referencia a un fondo PDF.
type PdfBackgroundResponse struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	FileURL   string          `json:"file_url"`
	FileName  string          `json:"file_name"`
	PageCount int             `json:"page_count"`
	Metadata  json.RawMessage `json:"metadata" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProjectEnvelope respuesta {project} de create/update.
type ProjectEnvelope struct {
	Project ProjectResponse `json:"project"`
}

// ProjectDetailEnvelope respuesta {project} de get.
type ProjectDetailEnvelope struct {
	Project ProjectDetailResponse `json:"project"`
}

// PdfBackgroundEnvelope respuesta {pdf_background} al registrar un fondo.
type PdfBackgroundEnvelope struct {
	PdfBackground PdfBackgroundResponse `json:"pdf_background"`
}

// PdfBackgroundListResponse fondos del proyecto, más recientes primero.
type PdfBackgroundListResponse struct {
	PdfBackgrounds []PdfBackgroundResponse `json:"pdf_backgrounds"`
}
