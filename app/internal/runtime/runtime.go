package runtime

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/internal/config"
	"backend/cipherhacks-mailer/app/pkg/redis"
)

// Resource is built once at startup and shared read-only by every request.
type Resource struct {
	Config     config.ApplicationConfig
	Logger     *zap.Logger
	HttpClient *resty.Client
	// Redis is nil unless rate limiting is enabled.
	Redis redis.Redis
}
