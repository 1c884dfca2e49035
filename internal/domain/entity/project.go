package entity

import (
	"encoding/json"
	"time"
)

// Modos de diseño soportados por el editor.
const (
	DesignMode2D = "2d"
	DesignMode3D = "3d"
)

// Project metadatos de un proyecto de diseño. Pertenece a una Company; UserID solo registra al creador
// (referencia débil: borrar al usuario no borra el proyecto).
type Project struct {
	ID          string
	CompanyID   string
	UserID      *string
	Name        string
	Description *string
	DesignMode  string
	IsDraft     bool
	FolderID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectSummary fila del listado de proyectos de un tenant.
type ProjectSummary struct {
	Project
	VersionCount   int
	CreatedByEmail *string
}

// ProjectDataVersion snapshot inmutable del documento de un proyecto.
// Version es estrictamente creciente por proyecto y empieza en 1.
type ProjectDataVersion struct {
	ID        string
	ProjectID string
	Data      json.RawMessage
	Version   int
	UpdatedAt time.Time
}

// PdfBackground referencia a un PDF almacenado fuera del sistema (solo metadatos).
type PdfBackground struct {
	ID        string
	ProjectID string
	FileURL   string
	FileName  string
	PageCount int
	Metadata  json.RawMessage
	CreatedAt time.Time
}

// ProjectDetail proyecto con su última versión (nil si no hay datos guardados) y sus fondos PDF.
type ProjectDetail struct {
	Project
	Latest         *ProjectDataVersion
	PdfBackgrounds []*PdfBackground
}
