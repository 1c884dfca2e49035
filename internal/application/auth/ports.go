package auth

import (
	"context"
	"time"

	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de empresa + usuario en una única transacción.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		users repository.UserRepository,
	) error) error
}

// TokenIssuer emite tokens de sesión (implementado por pkg/jwt.Manager).
type TokenIssuer interface {
	Issue(userID, companyID, role string) (string, time.Time, error)
}
