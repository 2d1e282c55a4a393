package config

type TurnstileConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	// SiteKey is public and only handed to the client-side widget.
	SiteKey   string `mapstructure:"site_key"`
	VerifyURL string `mapstructure:"verify_url"`
}
