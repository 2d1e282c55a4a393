package config

import "fmt"

type MailgunConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Domain      string `mapstructure:"domain"`
	BaseURL     string `mapstructure:"base_url"`
	FromName    string `mapstructure:"from_name"`
	FromAddress string `mapstructure:"from_address"`
	Subject     string `mapstructure:"subject"`
}

// MessagesURL returns the message-send endpoint for the configured domain.
func (c MailgunConfig) MessagesURL() string {
	return fmt.Sprintf("%s/v3/%s/messages", c.BaseURL, c.Domain)
}

// Sender returns the RFC 5322 display form of the fixed sender identity.
func (c MailgunConfig) Sender() string {
	if c.FromName == "" {
		return c.FromAddress
	}
	return fmt.Sprintf("%s <%s>", c.FromName, c.FromAddress)
}
