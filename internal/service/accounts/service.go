package accounts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/LV-BookingService/internal/domain"
	userRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/user"
)

// RegisterRequest запрос на создание аккаунта
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password"`
}

// LoginRequest запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse ответ с данными пользователя (без хэша пароля)
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service сервис аккаунтов клиентов
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса аккаунтов
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register создает аккаунт клиента
// Дубликат email это валидационная ошибка, видимая пользователю
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	s.logger.Info("Register: creating account email=%q", req.Email)

	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashPassword(req.Password),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%q already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully created user id=%d", created.ID)
	return fromDomainUser(created), nil
}

// Login аутентифицирует клиента по email и паролю
// Несуществующий email и неверный пароль неразличимы для вызывающего
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*UserResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%q", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if u.PasswordHash != hashPassword(req.Password) {
		s.logger.Warn("Login: wrong password for email=%q", req.Email)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d authenticated", u.ID)
	return fromDomainUser(u), nil
}

// hashPassword хэширует пароль (SHA-256, hex)
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func fromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
