package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	domain "tijaniyah/backend/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by id

	// createErr, when set, is returned by Create to simulate the store's
	// unique constraint firing after the pre-check passed.
	createErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailExists
		}
	}
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copy := *u
	return &copy, nil
}

func (r *memUserRepo) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		copy := *u
		out = append(out, &copy)
	}
	return out, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copy := *user
	r.users[user.ID] = &copy
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = updatedAt
	return nil
}

// stubTokens hands out opaque tokens and remembers who they belong to.
type stubTokens struct {
	mu     sync.Mutex
	n      int
	issued map[string]domain.Principal
}

func newStubTokens() *stubTokens {
	return &stubTokens{issued: map[string]domain.Principal{}}
}

func (s *stubTokens) Generate(userID, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	token := fmt.Sprintf("token-%d", s.n)
	s.issued[token] = domain.Principal{UserID: userID, Email: email}
	return token, nil
}

func (s *stubTokens) Validate(token string) (domain.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.issued[token]
	if !ok {
		return domain.Principal{}, fmt.Errorf("unknown token %q", token)
	}
	return p, nil
}

func newTestService() (*Service, *memUserRepo, *stubTokens) {
	repo := newMemUserRepo()
	tokens := newStubTokens()
	return NewService(repo, tokens), repo, tokens
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	user, token, err := svc.Register(context.Background(), "A@X.com ", "secret123", " Fatima ")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Fatima", user.Name)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, _, err := svc.Register(context.Background(), "", "secret123", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = svc.Register(context.Background(), "a@x.com", "   ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, _, err := svc.Register(context.Background(), "a@x.com", "secret123", "")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "a@x.com", "other-password", "")
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestRegister_ConstraintRace(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService()

	// Pre-check finds nothing, but the store's unique constraint fires on
	// insert: the caller must still observe the conflict error.
	repo.createErr = domain.ErrEmailExists
	_, _, err := svc.Register(context.Background(), "race@x.com", "secret123", "")
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	registered, _, err := svc.Register(context.Background(), "a@x.com", "secret123", "Ali")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), domain.Credentials{
		Email:    "a@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_EnumerationResistance(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, _, err := svc.Register(context.Background(), "known@x.com", "secret123", "")
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(context.Background(), domain.Credentials{
		Email:    "unknown@x.com",
		Password: "whatever",
	})
	_, _, wrongErr := svc.Login(context.Background(), domain.Credentials{
		Email:    "known@x.com",
		Password: "not-the-password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr, wrongErr, "unknown email and wrong password must be indistinguishable")
	assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
}

func TestLogin_TokenBoundToSubject(t *testing.T) {
	t.Parallel()
	svc, _, tokens := newTestService()

	registered, _, err := svc.Register(context.Background(), "a@x.com", "secret123", "")
	require.NoError(t, err)

	first, _, err := svc.Login(context.Background(), domain.Credentials{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	second, _, err := svc.Login(context.Background(), domain.Credentials{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	p1, err := tokens.Validate(first)
	require.NoError(t, err)
	p2, err := tokens.Validate(second)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, p1.UserID)
	assert.Equal(t, registered.ID, p2.UserID)
}

func TestAuthenticate_HeaderContract(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, token, err := svc.Register(context.Background(), "a@x.com", "secret123", "")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic xyz"},
		{"empty token", "Bearer "},
		{"lowercase scheme", "bearer " + token},
		{"unknown token", "Bearer not-issued-by-us"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tc.header)
			assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		})
	}

	user, err := svc.Authenticate(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService()

	registered, token, err := svc.Register(context.Background(), "a@x.com", "secret123", "")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(context.Background(), registered.ID))

	_, err = svc.Authenticate(context.Background(), "Bearer "+token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRenewToken(t *testing.T) {
	t.Parallel()
	svc, _, tokens := newTestService()

	registered, token, err := svc.Register(context.Background(), "a@x.com", "secret123", "")
	require.NoError(t, err)

	renewed, err := svc.RenewToken(context.Background(), token)
	require.NoError(t, err)
	assert.NotEqual(t, token, renewed)

	p, err := tokens.Validate(renewed)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, p.UserID)

	_, err = svc.RenewToken(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	registered, _, err := svc.Register(context.Background(), "a@x.com", "secret123", "")
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), registered.ID, "wrong", "newpassword1")
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	err = svc.ChangePassword(context.Background(), registered.ID, "secret123", "secret123")
	assert.ErrorIs(t, err, domain.ErrPasswordUnchanged)

	err = svc.ChangePassword(context.Background(), registered.ID, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, svc.ChangePassword(context.Background(), registered.ID, "secret123", "newpassword1"))

	_, _, err = svc.Login(context.Background(), domain.Credentials{Email: "a@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), domain.Credentials{Email: "a@x.com", Password: "newpassword1"})
	assert.NoError(t, err)
}
