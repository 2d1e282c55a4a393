package config

const (
	VerificationStrategyStatic = "static"
	VerificationStrategyRandom = "random"
)

type VerificationConfig struct {
	Strategy string `mapstructure:"strategy"`
	// Code is the deploy-time shared code used by the static strategy.
	Code   string `mapstructure:"code"`
	Length int    `mapstructure:"length"`
}
