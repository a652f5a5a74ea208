package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	userRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/user"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return nil, userRepo.ErrDuplicateEmail
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Amine",
		Email:    "amine@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Хэш пароля не утекает в ответ и не совпадает с исходным паролем
	stored := repo.byEmail["amine@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	req := &RegisterRequest{Name: "Amine", Email: "amine@example.com", Password: "secret"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	tests := []struct {
		name string
		req  *RegisterRequest
	}{
		{"empty name", &RegisterRequest{Email: "a@b.c", Password: "x"}},
		{"empty email", &RegisterRequest{Name: "A", Password: "x"}},
		{"empty password", &RegisterRequest{Name: "A", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name: "Amine", Email: "amine@example.com", Password: "secret",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "amine@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "Amine", resp.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name: "Amine", Email: "amine@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "amine@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret",
	})

	// Несуществующий email неотличим от неверного пароля
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
