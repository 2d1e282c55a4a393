package manager

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/api/client/exception"
	"backend/cipherhacks-mailer/app/api/client/request"
	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/pkg/mailgun"
	"backend/cipherhacks-mailer/app/pkg/turnstile"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
	"backend/cipherhacks-mailer/app/pkg/verification"
)

type EmailManager interface {
	// SendVerificationEmail verifies the captcha token and, only if it passes, mails the
	// verification code to req.Email. remoteIP may be empty.
	SendVerificationEmail(ctx context.Context, req request.SendEmailRequest, remoteIP string) error
}

type DefaultEmailManager struct {
	logger   *zap.Logger
	res      runtime.Resource
	verifier turnstile.Verifier
	sender   mailgun.Sender
	codes    verification.CodeGenerator
}

func NewEmailManager(
	res runtime.Resource,
	verifier turnstile.Verifier,
	sender mailgun.Sender,
	codes verification.CodeGenerator,
) EmailManager {
	return &DefaultEmailManager{
		logger:   res.Logger,
		res:      res,
		verifier: verifier,
		sender:   sender,
		codes:    codes,
	}
}

func (d *DefaultEmailManager) SendVerificationEmail(ctx context.Context, req request.SendEmailRequest, remoteIP string) error {
	requestID := ctxutil.RequestID(ctx)

	result, err := d.verifier.Verify(ctx, req.Token, remoteIP)
	if err != nil {
		d.logger.Warn("Captcha verification errored",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return exception.JoinErrors(exception.ErrCaptchaVerificationFailed, err)
	}
	if !result.Success {
		d.logger.Warn("Captcha verification rejected",
			zap.String("request_id", requestID),
			zap.Strings("error_codes", result.ErrorCodes),
			zap.String("hostname", result.Hostname),
		)
		return exception.ErrorWithContext(exception.ErrCaptchaVerificationFailed, "error_codes", result.ErrorCodes)
	}

	code, err := d.codes.Generate(ctx, req.Email)
	if err != nil {
		d.logger.Error("Failed to generate verification code",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return exception.JoinErrors(exception.ErrCodeGenerationFailed, err)
	}

	html, text, err := verification.RenderEmail(verification.EmailData{
		Recipient: req.Email,
		Code:      code,
	})
	if err != nil {
		d.logger.Error("Failed to render verification email",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return exception.JoinErrors(exception.ErrEmailDispatchFailed, err)
	}

	mailgunCfg := d.res.Config.MailgunConfig
	err = d.sender.Send(ctx, mailgun.Message{
		From:    mailgunCfg.Sender(),
		To:      req.Email,
		Subject: mailgunCfg.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.Error(err),
		}
		var deliveryErr *mailgun.DeliveryError
		if errors.As(err, &deliveryErr) {
			fields = append(fields,
				zap.Int("status_code", deliveryErr.StatusCode),
				zap.String("response", deliveryErr.Body),
			)
		}
		d.logger.Error("Failed to send verification email", fields...)
		return exception.JoinErrors(exception.ErrEmailDispatchFailed, err)
	}

	d.logger.Info("Verification email sent", zap.String("request_id", requestID))
	return nil
}
