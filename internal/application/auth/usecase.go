package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/kabs-design-api/internal/application/dto"
	"github.com/jhoicas/kabs-design-api/internal/domain"
	"github.com/jhoicas/kabs-design-api/internal/domain/entity"
	"github.com/jhoicas/kabs-design-api/internal/domain/repository"
	"github.com/jhoicas/kabs-design-api/pkg/slug"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 6

// bcrypt ignora lo que pase de 72 bytes; se rechaza en vez de truncar en silencio.
const maxPasswordBytes = 72

// AuthUseCase casos de uso de autenticación: registro de empresa + admin, login y emisión de token.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	tx          TxRunner
	tokens      TokenIssuer
	hashCost    int
	now         func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthUseCase construye el caso de uso de auth con bcrypt.DefaultCost.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, tx TxRunner, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tx:          tx,
		tokens:      tokens,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
	}
}

// WithHashCost ajusta el costo de bcrypt (tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithHashCost(cost int) *AuthUseCase {
	uc.hashCost = cost
	return uc
}

// RegisterAccount crea la empresa y su primer usuario (rol admin) en una transacción.
// Devuelve ErrConflict si el email ya existe. El slug no se deduplica.
func (uc *AuthUseCase) RegisterAccount(ctx context.Context, in dto.RegisterRequest) (*entity.Company, *entity.User, error) {
	email := normalizeEmail(in.Email)
	companyName := strings.TrimSpace(in.CompanyName)

	verr := &domain.ValidationError{}
	if !validEmail(email) {
		verr.Add("email", "formato de email inválido")
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		verr.Add("password", fmt.Sprintf("debe tener al menos %d caracteres", MinPasswordLength))
	} else if len(in.Password) > maxPasswordBytes {
		verr.Add("password", fmt.Sprintf("no puede superar %d bytes", maxPasswordBytes))
	}
	if companyName == "" {
		verr.Add("company_name", "es obligatorio")
	}
	if err := verr.OrNil(); err != nil {
		return nil, nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("registro: buscar email: %w", err)
	}
	if existing != nil {
		return nil, nil, fmt.Errorf("%w: el email ya está registrado", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, nil, fmt.Errorf("registro: hash password: %w", err)
	}

	now := uc.now().UTC()
	company := &entity.Company{
		ID:        uuid.NewString(),
		Name:      companyName,
		Slug:      slug.Make(companyName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		CompanyID:    company.ID,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    trimOptional(in.FirstName),
		LastName:     trimOptional(in.LastName),
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunRegistration(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, nil, fmt.Errorf("%w: el email ya está registrado", domain.ErrConflict)
		}
		return nil, nil, fmt.Errorf("registro: %w", err)
	}
	return company, user, nil
}

// Authenticate verifica email/password. Email inexistente, usuario inactivo y password incorrecta
// devuelven el mismo ErrInvalidCredentials; para emails inexistentes igual se ejecuta una comparación bcrypt.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("login: buscar usuario: %w", err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(uc.dummy(), []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Register registra la cuenta y devuelve un token de sesión.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	company, user, err := uc.RegisterAccount(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.session(user, company)
}

// Login autentica y devuelve token + usuario + empresa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		verr := &domain.ValidationError{}
		if strings.TrimSpace(in.Email) == "" {
			verr.Add("email", "es obligatorio")
		}
		if in.Password == "" {
			verr.Add("password", "es obligatorio")
		}
		return nil, verr
	}
	user, err := uc.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("login: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, fmt.Errorf("login: empresa %s del usuario %s no existe", user.CompanyID, user.ID)
	}
	return uc.session(user, company)
}

// Me devuelve el contexto de identidad del token.
func (uc *AuthUseCase) Me(id entity.Identity) dto.MeResponse {
	return dto.MeResponse{UserID: id.UserID, CompanyID: id.CompanyID, Role: id.Role}
}

func (uc *AuthUseCase) session(user *entity.User, company *entity.Company) (*dto.AuthResponse, error) {
	token, expiresAt, err := uc.tokens.Issue(user.ID, company.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
		Company:   dto.CompanyResponse{ID: company.ID, Name: company.Name, Slug: company.Slug},
	}, nil
}

func (uc *AuthUseCase) dummy() []byte {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("kabs-timing-equalizer"), uc.hashCost)
	})
	return uc.dummyHash
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Status:    u.Status,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
