package config

import "time"

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RouterConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
	// ClientIPHeader names the proxy-supplied header carrying the caller address.
	ClientIPHeader string `mapstructure:"client_ip_header"`
}

type HttpClientConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}
