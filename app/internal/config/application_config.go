package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
)

var (
	ErrMissingTurnstileSecret = errors.New("turnstile.secret_key is required")
	ErrMissingMailgunAPIKey   = errors.New("mailgun.api_key is required")
	ErrMissingMailgunDomain   = errors.New("mailgun.domain is required")
	ErrMissingSenderAddress   = errors.New("mailgun.from_address is required")
	ErrMissingStaticCode      = errors.New("verification.code is required for the static strategy")
	ErrUnknownStrategy        = errors.New("verification.strategy must be static or random")
	ErrInvalidCodeLength      = errors.New("verification.length must be positive for the random strategy")
	ErrMissingRedisHosts      = errors.New("redis.hosts is required when rate limiting is enabled")
)

// bindEnv binds an environment variable with an optional default value
func bindEnv(configKey, envKey string, defaultValue ...interface{}) {
	if len(defaultValue) > 0 {
		viper.SetDefault(configKey, defaultValue[0])
	}
	viper.BindEnv(configKey, envKey)
}

type ApplicationConfig struct {
	ServerConfig       ServerConfig       `mapstructure:"server"`
	RouterConfig       RouterConfig       `mapstructure:"router"`
	HttpClientConfig   HttpClientConfig   `mapstructure:"http_client"`
	RedisConfig        RedisConfig        `mapstructure:"redis"`
	RateLimitConfig    RateLimitConfig    `mapstructure:"rate_limit"`
	TurnstileConfig    TurnstileConfig    `mapstructure:"turnstile"`
	MailgunConfig      MailgunConfig      `mapstructure:"mailgun"`
	VerificationConfig VerificationConfig `mapstructure:"verification"`
}

func ReadApplicationConfig(env ctxutil.AppMode, logger *zap.Logger) (cfg ApplicationConfig, err error) {
	if env == "" {
		env = ctxutil.AppModeLocal
	}
	confFileName := fmt.Sprintf("config-%s", env)

	viper.SetConfigName(confFileName)
	viper.SetConfigType("yaml")

	configPath := "./config"
	if env == ctxutil.AppModeTest {
		configPath = "../../../config"
	}
	viper.AddConfigPath(configPath)
	// For unit tests
	viper.AddConfigPath("../../../../config")

	if err := viper.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("error reading config file: %v", err)
	} else {
		logger.Info(
			"using config",
			zap.String("file", confFileName),
		)
	}
	viper.AutomaticEnv()

	// Server
	bindEnv("server.port", "SERVER_PORT", 8080)
	bindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT", "30s")

	// Router
	bindEnv("router.allowed_origins", "ROUTER_ALLOWED_ORIGINS")
	bindEnv("router.client_ip_header", "ROUTER_CLIENT_IP_HEADER", "CF-Connecting-IP")

	// HTTP client
	bindEnv("http_client.timeout", "HTTP_CLIENT_TIMEOUT", "30s")

	// Redis
	bindEnv("redis.hosts", "REDIS_HOSTS")
	bindEnv("redis.pool_size", "REDIS_POOL_SIZE")
	bindEnv("redis.min_idle_conns", "REDIS_MIN_IDLE_CONNS")
	bindEnv("redis.max_idle_conns", "REDIS_MAX_IDLE_CONNS")
	bindEnv("redis.write_timeout", "REDIS_WRITE_TIMEOUT")
	bindEnv("redis.read_timeout", "REDIS_READ_TIMEOUT")
	bindEnv("redis.conn_max_lifetime", "REDIS_CONN_MAX_LIFETIME")

	// Rate limit
	bindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED", false)
	bindEnv("rate_limit.requests_per_minute", "RATE_LIMIT_REQUESTS_PER_MINUTE", 5)
	bindEnv("rate_limit.burst", "RATE_LIMIT_BURST", 5)

	// Turnstile
	bindEnv("turnstile.secret_key", "TURNSTILE_SECRET_KEY")
	bindEnv("turnstile.site_key", "TURNSTILE_SITE_KEY")
	bindEnv("turnstile.verify_url", "TURNSTILE_VERIFY_URL", "https://challenges.cloudflare.com/turnstile/v0/siteverify")

	// Mailgun
	bindEnv("mailgun.api_key", "MAILGUN_API_KEY")
	bindEnv("mailgun.domain", "MAILGUN_DOMAIN")
	bindEnv("mailgun.base_url", "MAILGUN_BASE_URL", "https://api.mailgun.net")
	bindEnv("mailgun.from_name", "MAILGUN_FROM_NAME", "CipherHacks")
	bindEnv("mailgun.from_address", "MAILGUN_FROM_ADDRESS")
	bindEnv("mailgun.subject", "MAILGUN_SUBJECT", "Your CipherHacks verification code")

	// Verification
	bindEnv("verification.strategy", "VERIFICATION_STRATEGY", VerificationStrategyStatic)
	bindEnv("verification.code", "VERIFICATION_CODE")
	bindEnv("verification.length", "VERIFICATION_LENGTH", 8)

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %s", err.Error())
	}

	return cfg, err
}

// Validate reports every missing or inconsistent setting at once.
func (c ApplicationConfig) Validate() error {
	var errs []error
	if c.TurnstileConfig.SecretKey == "" {
		errs = append(errs, ErrMissingTurnstileSecret)
	}
	if c.MailgunConfig.APIKey == "" {
		errs = append(errs, ErrMissingMailgunAPIKey)
	}
	if c.MailgunConfig.Domain == "" {
		errs = append(errs, ErrMissingMailgunDomain)
	}
	if c.MailgunConfig.FromAddress == "" {
		errs = append(errs, ErrMissingSenderAddress)
	}

	switch c.VerificationConfig.Strategy {
	case VerificationStrategyStatic, "":
		if c.VerificationConfig.Code == "" {
			errs = append(errs, ErrMissingStaticCode)
		}
	case VerificationStrategyRandom:
		if c.VerificationConfig.Length <= 0 {
			errs = append(errs, ErrInvalidCodeLength)
		}
	default:
		errs = append(errs, ErrUnknownStrategy)
	}

	if c.RateLimitConfig.Enabled && c.RedisConfig.Hosts == "" {
		errs = append(errs, ErrMissingRedisHosts)
	}

	return errors.Join(errs...)
}
