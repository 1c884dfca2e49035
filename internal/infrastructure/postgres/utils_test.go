package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/kabs-design-api/internal/domain"
)

func TestWrapErr_Clasificacion(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		conflict    bool
		unavailable bool
	}{
		{"email duplicado", &pgconn.PgError{Code: "23505"}, true, false},
		{"tabla inexistente", &pgconn.PgError{Code: "42P01"}, false, true},
		{"base inexistente", &pgconn.PgError{Code: "3D000"}, false, true},
		{"conexión caída", &pgconn.PgError{Code: "08006"}, false, true},
		{"statement timeout", &pgconn.PgError{Code: "57014"}, false, true},
		{"deadline del contexto", fmt.Errorf("acquire: %w", context.DeadlineExceeded), false, true},
		{"error de red", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, false, true},
		{"violación de FK", &pgconn.PgError{Code: "23503"}, false, false},
		{"error genérico", errors.New("boom"), false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := wrapErr("op", tc.err)
			assert.Equal(t, tc.conflict, errors.Is(err, domain.ErrConflict))
			assert.Equal(t, tc.unavailable, errors.Is(err, domain.ErrStoreUnavailable))
			assert.ErrorIs(t, err, tc.err, "la causa original se conserva")
		})
	}
	assert.NoError(t, wrapErr("op", nil))
}
