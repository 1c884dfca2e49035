package entity

import "time"

// Roles conocidos. El conjunto es abierto: solo RequireRole interpreta el valor.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Estados de usuario. Solo UserStatusActive puede autenticarse.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    *string
	LastName     *string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si el usuario puede iniciar sesión.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
