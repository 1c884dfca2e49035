package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/kabs-design-api/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
)

func newManager(t *testing.T) *pkgjwt.Manager {
	t.Helper()
	m, err := pkgjwt.NewManager(testSecret, "kabs-test", time.Hour)
	require.NoError(t, err)
	return m
}

func TestNewManager_SinSecret_RetornaError(t *testing.T) {
	_, err := pkgjwt.NewManager("", "kabs-test", time.Hour)
	assert.ErrorIs(t, err, pkgjwt.ErrMissingSecret)
}

func TestIssueYVerify_ConservaIdentidad(t *testing.T) {
	m := newManager(t)
	tok, expiresAt, err := m.Issue(testUserID, testCompanyID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testCompanyID, claims.CompanyID)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerify_TokenExpiradoConFirmaValida(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newManager(t).WithClock(func() time.Time { return base })

	tok, _, err := m.IssueWithTTL(testUserID, testCompanyID, "member", time.Minute)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.NoError(t, err, "dentro de la vigencia el token es válido")

	later := m.WithClock(func() time.Time { return base.Add(2 * time.Minute) })
	_, err = later.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
	assert.Equal(t, "expired", pkgjwt.Reason(err))
}

func TestVerify_SecretIncorrecto_FirmaInvalida(t *testing.T) {
	tok, _, err := newManager(t).Issue(testUserID, testCompanyID, "admin")
	require.NoError(t, err)

	other, err := pkgjwt.NewManager("otro-secret-completamente-distinto", "kabs-test", time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidSignature)
	assert.Equal(t, "invalid_signature", pkgjwt.Reason(err))
}

func TestVerify_TokenManipulado_FirmaInvalida(t *testing.T) {
	m := newManager(t)
	tok, _, err := m.Issue(testUserID, testCompanyID, "member")
	require.NoError(t, err)

	forged, _, err := m.Issue(testUserID, "00000000-0000-0000-0000-00000000ffff", "admin")
	require.NoError(t, err)

	// payload de otro token con la firma del original
	parts := strings.Split(tok, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidSignature)
}

func TestVerify_Malformado(t *testing.T) {
	m := newManager(t)
	for _, raw := range []string{"", "token.invalido.aqui", "abc"} {
		_, err := m.Verify(raw)
		assert.ErrorIs(t, err, pkgjwt.ErrMalformed, "token %q", raw)
		assert.Equal(t, "malformed", pkgjwt.Reason(err))
	}
}

func TestVerify_SinCompanyID_Malformado(t *testing.T) {
	m := newManager(t)
	tok, _, err := m.Issue(testUserID, "", "admin")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

func TestVerify_AlgoritmoNoPermitido(t *testing.T) {
	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           testUserID,
		CompanyID:        testCompanyID,
		Role:             "admin",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newManager(t).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidSignature)
}
