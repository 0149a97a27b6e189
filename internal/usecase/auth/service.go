package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "tijaniyah/backend/internal/domain/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bearerPrefix is the exact prefix required on the Authorization header.
const bearerPrefix = "Bearer "

// Service coordinates authentication workflows between domain and infrastructure.
type Service struct {
	users   domain.UserRepository
	tokens  TokenManager
	nowFunc func() time.Time
}

// NewService constructs an auth service.
func NewService(users domain.UserRepository, tokens TokenManager) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		nowFunc: time.Now,
	}
}

// Register creates a new user and returns the persisted entity, without its
// password hash, alongside a freshly minted token. The repository's unique
// constraint backs up the pre-check: when two registrations race, exactly one
// wins and the other observes ErrEmailExists.
func (s *Service) Register(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" {
		return nil, "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if password == "" {
		return nil, "", fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := s.nowFunc().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		Role:         domain.RoleUser,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return sanitizeUser(user), token, nil
}

// Login validates credentials and returns a token plus user. An unknown email
// and a wrong password fail with the identical error value.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(creds.Email))
	password := strings.TrimSpace(creds.Password)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, sanitizeUser(user), nil
}

// VerifyToken validates a bearer token and returns the associated user.
func (s *Service) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	principal, err := s.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

// Authenticate parses an Authorization header and resolves it to a user. A
// missing header, a non-bearer scheme, an empty token, and a token that fails
// verification all collapse into ErrTokenInvalid so the boundary surfaces a
// single 401 shape.
func (s *Service) Authenticate(ctx context.Context, authorizationHeader string) (*domain.User, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, domain.ErrTokenInvalid
	}
	token := strings.TrimSpace(authorizationHeader[len(bearerPrefix):])
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	return s.VerifyToken(ctx, token)
}

// RenewToken exchanges a still-valid token for a fresh one bound to the same
// subject.
func (s *Service) RenewToken(ctx context.Context, token string) (string, error) {
	user, err := s.VerifyToken(ctx, token)
	if err != nil {
		return "", err
	}
	return s.tokens.Generate(user.ID, user.Email)
}

// ChangePassword verifies the current password and stores a new hash.
func (s *Service) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	currentPassword = strings.TrimSpace(currentPassword)
	newPassword = strings.TrimSpace(newPassword)
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: current_password and new_password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.ErrPasswordMismatch
	}
	if currentPassword == newPassword {
		return domain.ErrPasswordUnchanged
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, user.ID, string(hashed), s.nowFunc().UTC())
}

func sanitizeUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	copy := *u
	copy.PasswordHash = ""
	return &copy
}
