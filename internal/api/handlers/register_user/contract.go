package register_user

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/service/accounts"
)

type AccountService interface {
	Register(ctx context.Context, req *accounts.RegisterRequest) (*accounts.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
