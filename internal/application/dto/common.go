package dto

import "github.com/jhoicas/kabs-design-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Code es estable (VALIDATION, NOT_FOUND, ...); Hint solo en desarrollo.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details []domain.FieldError `json:"details,omitempty"`
	Hint    string              `json:"hint,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
