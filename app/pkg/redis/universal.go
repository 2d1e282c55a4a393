package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/internal/config"
)

type Redis interface {
	GetUniversalClient() redis.UniversalClient
	Ping(ctx context.Context) error
	Close() error
}

// UniversalClient wraps redis.UniversalClient to handle both single-node and cluster setups
type UniversalClient struct {
	client    redis.UniversalClient
	log       *zap.Logger
	isCluster bool
}

// NewUniversalRedisClient picks a single-node client for one host and a cluster client otherwise.
func NewUniversalRedisClient(cfg config.RedisConfig, log *zap.Logger) (Redis, error) {
	hosts := splitHosts(cfg.Hosts)
	if len(hosts) == 0 {
		return nil, fmt.Errorf("no redis hosts configured")
	}

	var client redis.UniversalClient
	isCluster := len(hosts) > 1
	if !isCluster {
		client = redis.NewClient(&redis.Options{
			Addr:            hosts[0],
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			WriteTimeout:    time.Duration(cfg.WriteTimeout) * time.Second,
			ReadTimeout:     time.Duration(cfg.ReadTimeout) * time.Second,
			ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
		})
	} else {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           hosts,
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			WriteTimeout:    time.Duration(cfg.WriteTimeout) * time.Second,
			ReadTimeout:     time.Duration(cfg.ReadTimeout) * time.Second,
			ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
		})
	}

	r := &UniversalClient{
		client:    client,
		log:       log,
		isCluster: isCluster,
	}
	if err := r.Ping(context.Background()); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info(
		"connected to redis",
		zap.Strings("hosts", hosts),
		zap.Bool("cluster", isCluster),
	)

	return r, nil
}

func splitHosts(raw string) []string {
	var hosts []string
	for _, host := range strings.Split(raw, ",") {
		if host = strings.TrimSpace(host); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}

func (r *UniversalClient) GetUniversalClient() redis.UniversalClient {
	return r.client
}

func (r *UniversalClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *UniversalClient) Close() error {
	return r.client.Close()
}
