package update_settings

import "context"

type SettingsService interface {
	SetHomeVisitSurcharge(ctx context.Context, surcharge int64) error
	SetValue(ctx context.Context, key, value string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
