package repository

import (
	"context"

	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve un error que envuelve domain.ErrConflict si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail busca en todas las empresas (el email es único global). (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
