package mailgun

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/internal/config"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
)

const basicAuthUser = "api"

type DefaultSender struct {
	httpClient *resty.Client
	cfg        config.MailgunConfig
	logger     *zap.Logger
}

func NewSender(httpClient *resty.Client, cfg config.MailgunConfig, logger *zap.Logger) Sender {
	return &DefaultSender{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *DefaultSender) Send(ctx context.Context, message Message) error {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBasicAuth(basicAuthUser, s.cfg.APIKey).
		SetFormData(map[string]string{
			"from":    message.From,
			"to":      message.To,
			"subject": message.Subject,
			"html":    message.HTML,
			"text":    message.Text,
		}).
		Post(s.cfg.MessagesURL())
	if err != nil {
		s.logger.Error("Failed to call mailgun messages API",
			zap.String("request_id", ctxutil.RequestID(ctx)),
			zap.Error(err),
		)
		return fmt.Errorf("mailgun send: %w", err)
	}

	if !resp.IsSuccess() {
		return &DeliveryError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	s.logger.Debug("Mailgun accepted message",
		zap.String("request_id", ctxutil.RequestID(ctx)),
		zap.Int("status_code", resp.StatusCode()),
	)
	return nil
}
