package main

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	server "backend/cipherhacks-mailer/app/api"
	"backend/cipherhacks-mailer/app/internal/config"
	"backend/cipherhacks-mailer/app/pkg/logging"
	"backend/cipherhacks-mailer/app/pkg/redis"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
	httpClientUtil "backend/cipherhacks-mailer/app/pkg/util/httpclient"

	_ "github.com/joho/godotenv/autoload"
)

const defaultHttpClientTimeout = 30 * time.Second

func main() {
	env := ctxutil.GetAppModeFromEnv()
	ctx := ctxutil.SetAppMode(context.Background(), env)

	logger := setupLogging(env)
	defer func() {
		_ = logger.Sync()
	}()

	cfg := loadConfiguration(env, logger)

	redisClient := setupRedis(cfg, logger)
	defer closeRedis(redisClient, logger)

	httpClient := setupHttpClient(cfg, logger)

	httpServer := createServer(cfg, logger, redisClient, httpClient)
	httpServer.Start(ctx)
}

func setupLogging(env ctxutil.AppMode) *zap.Logger {
	logConfig := logging.NewLogConfig("[cipherhacks-mailer]", env)
	logger, err := logConfig.NewLogging()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func loadConfiguration(env ctxutil.AppMode, logger *zap.Logger) config.ApplicationConfig {
	cfg, err := config.ReadApplicationConfig(env, logger)
	if err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		panic(err)
	}
	return cfg
}

// setupRedis connects only when rate limiting needs it.
func setupRedis(cfg config.ApplicationConfig, logger *zap.Logger) redis.Redis {
	if !cfg.RateLimitConfig.Enabled {
		return nil
	}
	redisClient, err := redis.NewUniversalRedisClient(cfg.RedisConfig, logger)
	if err != nil {
		panic(err)
	}
	return redisClient
}

func closeRedis(redisClient redis.Redis, logger *zap.Logger) {
	if redisClient == nil {
		return
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("error closing redis connection", zap.Error(err))
	} else {
		logger.Info("closed redis connection")
	}
}

func setupHttpClient(cfg config.ApplicationConfig, logger *zap.Logger) *resty.Client {
	timeout := cfg.HttpClientConfig.Timeout
	if timeout <= 0 {
		timeout = defaultHttpClientTimeout
	}
	return httpClientUtil.NewRestyClient(timeout, logger)
}

func createServer(cfg config.ApplicationConfig, logger *zap.Logger, redisClient redis.Redis, httpClient *resty.Client) server.Server {
	return server.Server{
		Config:     cfg,
		Logger:     logger,
		Redis:      redisClient,
		HttpClient: httpClient,
	}
}
