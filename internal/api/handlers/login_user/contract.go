package login_user

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/service/accounts"
)

type AccountService interface {
	Login(ctx context.Context, req *accounts.LoginRequest) (*accounts.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
