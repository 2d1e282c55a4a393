package turnstile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/internal/config"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
)

var (
	ErrUnexpectedStatus = errors.New("turnstile returned a non-2xx status")
	ErrMalformedBody    = errors.New("turnstile returned a malformed body")
	ErrMissingSuccess   = errors.New("turnstile response has no success field")
)

type DefaultVerifier struct {
	httpClient *resty.Client
	cfg        config.TurnstileConfig
	logger     *zap.Logger
}

func NewVerifier(httpClient *resty.Client, cfg config.TurnstileConfig, logger *zap.Logger) Verifier {
	return &DefaultVerifier{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

func (v *DefaultVerifier) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	form := map[string]string{
		"secret":   v.cfg.SecretKey,
		"response": token,
	}
	if remoteIP != "" {
		form["remoteip"] = remoteIP
	}

	resp, err := v.httpClient.R().
		SetContext(ctx).
		SetFormData(form).
		Post(v.cfg.VerifyURL)
	if err != nil {
		v.logger.Error("Failed to call turnstile siteverify",
			zap.String("request_id", ctxutil.RequestID(ctx)),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("turnstile siteverify: %w", err)
	}

	if !resp.IsSuccess() {
		v.logger.Warn("Non-2xx response from turnstile",
			zap.String("request_id", ctxutil.RequestID(ctx)),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("response", string(resp.Body())),
		)
		return Result{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var body VerifyResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		v.logger.Warn("Failed to unmarshal turnstile response",
			zap.String("request_id", ctxutil.RequestID(ctx)),
			zap.String("response", string(resp.Body())),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if body.Success == nil {
		v.logger.Warn("Turnstile response is missing the success field",
			zap.String("request_id", ctxutil.RequestID(ctx)),
			zap.String("response", string(resp.Body())),
		)
		return Result{}, ErrMissingSuccess
	}

	return Result{
		Success:    *body.Success,
		Hostname:   body.Hostname,
		ErrorCodes: body.ErrorCodes,
	}, nil
}
