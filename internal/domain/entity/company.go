package entity

import "time"

// Company representa una organización/tenant del sistema. Es la unidad de aislamiento de datos.
// Slug se deriva del nombre al registrarse y no se deduplica entre empresas.
type Company struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
