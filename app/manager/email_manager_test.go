package manager_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/api/client/exception"
	"backend/cipherhacks-mailer/app/api/client/request"
	"backend/cipherhacks-mailer/app/internal/config"
	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/manager"
	"backend/cipherhacks-mailer/app/pkg/mailgun"
	"backend/cipherhacks-mailer/app/pkg/turnstile"
	"backend/cipherhacks-mailer/app/test/mocks"
)

type fixture struct {
	verifier *mocks.MockVerifier
	sender   *mocks.MockSender
	codes    *mocks.MockCodeGenerator
	manager  manager.EmailManager
}

func newFixture() fixture {
	res := runtime.Resource{
		Logger: zap.NewNop(),
		Config: config.ApplicationConfig{
			MailgunConfig: config.MailgunConfig{
				FromName:    "CipherHacks",
				FromAddress: "noreply@mg.example.test",
				Subject:     "Your CipherHacks verification code",
			},
		},
	}
	f := fixture{
		verifier: &mocks.MockVerifier{},
		sender:   &mocks.MockSender{},
		codes:    &mocks.MockCodeGenerator{},
	}
	f.manager = manager.NewEmailManager(res, f.verifier, f.sender, f.codes)
	return f
}

var validRequest = request.SendEmailRequest{Email: "student@example.com", Token: "tok-123"}

func TestSendVerificationEmail_Success(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.verifier.On("Verify", ctx, "tok-123", "203.0.113.7").Return(turnstile.Result{Success: true}, nil).Once()
	f.codes.On("Generate", ctx, "student@example.com").Return("CIPHER-7H4X", nil).Once()
	f.sender.On("Send", ctx, mock.MatchedBy(func(m mailgun.Message) bool {
		return m.To == "student@example.com" &&
			m.From == "CipherHacks <noreply@mg.example.test>" &&
			m.Subject == "Your CipherHacks verification code" &&
			strings.Contains(m.HTML, "CIPHER-7H4X") &&
			strings.Contains(m.Text, "CIPHER-7H4X")
	})).Return(nil).Once()

	err := f.manager.SendVerificationEmail(ctx, validRequest, "203.0.113.7")

	require.NoError(t, err)
	f.verifier.AssertExpectations(t)
	f.codes.AssertExpectations(t)
	f.sender.AssertExpectations(t)
}

func TestSendVerificationEmail_CaptchaRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.verifier.On("Verify", ctx, "tok-123", "").
		Return(turnstile.Result{Success: false, ErrorCodes: []string{"invalid-input-response"}}, nil).Once()

	err := f.manager.SendVerificationEmail(ctx, validRequest, "")

	assert.ErrorIs(t, err, exception.ErrCaptchaVerificationFailed)
	f.codes.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendVerificationEmail_CaptchaErrored(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.verifier.On("Verify", ctx, "tok-123", "").Return(turnstile.Result{}, turnstile.ErrMalformedBody).Once()

	err := f.manager.SendVerificationEmail(ctx, validRequest, "")

	assert.ErrorIs(t, err, exception.ErrCaptchaVerificationFailed)
	assert.ErrorIs(t, err, turnstile.ErrMalformedBody)
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendVerificationEmail_CodeGenerationFailed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.verifier.On("Verify", ctx, "tok-123", "").Return(turnstile.Result{Success: true}, nil).Once()
	f.codes.On("Generate", ctx, "student@example.com").Return("", errors.New("boom")).Once()

	err := f.manager.SendVerificationEmail(ctx, validRequest, "")

	assert.ErrorIs(t, err, exception.ErrCodeGenerationFailed)
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendVerificationEmail_DeliveryFailed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	deliveryErr := &mailgun.DeliveryError{StatusCode: 401, Body: "Forbidden"}
	f.verifier.On("Verify", ctx, "tok-123", "").Return(turnstile.Result{Success: true}, nil).Once()
	f.codes.On("Generate", ctx, "student@example.com").Return("CIPHER-7H4X", nil).Once()
	f.sender.On("Send", ctx, mock.AnythingOfType("mailgun.Message")).Return(deliveryErr).Once()

	err := f.manager.SendVerificationEmail(ctx, validRequest, "")

	assert.ErrorIs(t, err, exception.ErrEmailDispatchFailed)
	var target *mailgun.DeliveryError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 401, target.StatusCode)
}
