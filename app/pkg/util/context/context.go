package ctxutil

import (
	"context"
	"os"
	"strings"
)

type AppMode string

const (
	AppModeLocal AppMode = "local"
	AppModeTest  AppMode = "test"
	AppModeDev   AppMode = "dev"
	AppModeProd  AppMode = "production"
)

// AppModeKey carries the mode the process was started in.
const AppModeKey ContextKey[AppMode] = "app_mode"

func SetAppMode(ctx context.Context, appMode AppMode) context.Context {
	return AppModeKey.Set(ctx, appMode)
}

func GetAppMode(ctx context.Context) AppMode {
	if mode, ok := AppModeKey.Get(ctx); ok {
		return mode
	}
	return AppModeLocal
}

func GetAppModeFromEnv() AppMode {
	env := strings.ToLower(os.Getenv("APP_ENV"))
	switch env {
	case string(AppModeLocal):
		return AppModeLocal
	case string(AppModeTest):
		return AppModeTest
	case string(AppModeDev):
		return AppModeDev
	case string(AppModeProd), "prod":
		return AppModeProd
	default:
		return AppModeLocal
	}
}
