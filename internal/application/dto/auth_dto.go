package dto

import "time"

// RegisterRequest alta de empresa + primer usuario (admin).
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	CompanyName string  `json:"company_name"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AuthResponse salida de register y login: token de sesión + usuario + empresa.
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      UserResponse    `json:"user"`
	Company   CompanyResponse `json:"company"`
}

// MeResponse contexto de identidad del token actual.
type MeResponse struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}
