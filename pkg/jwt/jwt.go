package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. Todos terminan en 401 para el cliente, pero se distinguen en los logs.
var (
	ErrMissingSecret    = errors.New("jwt: secret vacío")
	ErrMalformed        = errors.New("jwt: token malformado")
	ErrInvalidSignature = errors.New("jwt: firma inválida")
	ErrExpired          = errors.New("jwt: token expirado")
)

// Claims incluye los claims estándar JWT más la identidad del llamador.
// Role viaja en el token para que RequireRole decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}

// Manager emite y verifica tokens de sesión firmados con HS256.
// El secreto se carga una sola vez al arrancar; los tokens no se pueden revocar antes de expirar.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewManager construye el emisor/verificador. Falla si el secreto está vacío o la vigencia no es positiva.
func NewManager(secret, issuer string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt: vigencia inválida %s", ttl)
	}
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// WithClock devuelve una copia del Manager que usa el reloj indicado (tests).
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

// TTL devuelve la vigencia por defecto de los tokens emitidos.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue firma un token con la vigencia por defecto.
func (m *Manager) Issue(userID, companyID, role string) (string, time.Time, error) {
	return m.IssueWithTTL(userID, companyID, role, m.ttl)
}

// IssueWithTTL firma un token que expira en now + ttl.
func (m *Manager) IssueWithTTL(userID, companyID, role string, ttl time.Duration) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: firmar token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify valida firma y expiración y devuelve los claims.
// Retorna ErrMalformed, ErrInvalidSignature o ErrExpired (envolviendo la causa de la librería).
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, classify(err)
	}
	if claims.UserID == "" || claims.CompanyID == "" {
		return nil, fmt.Errorf("%w: faltan user_id o company_id", ErrMalformed)
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}

// Reason devuelve una etiqueta estable del fallo para los logs.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}
