package controller_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/api/client/exception"
	"backend/cipherhacks-mailer/app/api/client/request"
	"backend/cipherhacks-mailer/app/api/controller"
	"backend/cipherhacks-mailer/app/internal/config"
	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/internal/validator"
	"backend/cipherhacks-mailer/app/manager"
	"backend/cipherhacks-mailer/app/test/mocks"
)

func newController(t *testing.T, emailManager *mocks.MockEmailManager) (*echo.Echo, *controller.EmailController) {
	t.Helper()
	res := runtime.Resource{
		Logger: zap.NewNop(),
		Config: config.ApplicationConfig{
			RouterConfig: config.RouterConfig{ClientIPHeader: "CF-Connecting-IP"},
		},
	}
	vals := validator.NewValidators(res)
	require.NoError(t, vals.Setup())

	e := echo.New()
	e.Validator = vals
	return e, controller.NewEmailController(&manager.Managers{EmailManager: emailManager}, res)
}

func serve(e *echo.Echo, c *controller.EmailController, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = c.SendEmail(e.NewContext(req, rec))
	return rec
}

func TestSendEmail_PassesClientIPHeader(t *testing.T) {
	emailManager := &mocks.MockEmailManager{}
	emailManager.On("SendVerificationEmail", mock.Anything,
		request.SendEmailRequest{Email: "student@example.com", Token: "tok"}, "203.0.113.7").Return(nil).Once()
	e, c := newController(t, emailManager)

	rec := serve(e, c, `{"email":"student@example.com","token":"tok"}`, map[string]string{"CF-Connecting-IP": "203.0.113.7"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Email sent!"}`, rec.Body.String())
	emailManager.AssertExpectations(t)
}

func TestSendEmail_MissingHeaderForwardsEmptyIP(t *testing.T) {
	emailManager := &mocks.MockEmailManager{}
	emailManager.On("SendVerificationEmail", mock.Anything, mock.Anything, "").Return(nil).Once()
	e, c := newController(t, emailManager)

	rec := serve(e, c, `{"email":"student@example.com","token":"tok"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	emailManager.AssertExpectations(t)
}

func TestSendEmail_InvalidBodySkipsManager(t *testing.T) {
	emailManager := &mocks.MockEmailManager{}
	e, c := newController(t, emailManager)

	rec := serve(e, c, `{"email":"nope","token":""}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Invalid request"`)
	emailManager.AssertNotCalled(t, "SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendEmail_MapsManagerErrors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "captcha",
			err:          exception.ErrorWithContext(exception.ErrCaptchaVerificationFailed, "error_codes", "timeout-or-duplicate"),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"Captcha verification failed"}`,
		},
		{
			name:         "dispatch",
			err:          exception.JoinErrors(exception.ErrEmailDispatchFailed, errors.New("mailgun returned status 401")),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to send email"}`,
		},
		{
			name:         "unexpected",
			err:          errors.New("something odd"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emailManager := &mocks.MockEmailManager{}
			emailManager.On("SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything).Return(tt.err).Once()
			e, c := newController(t, emailManager)

			rec := serve(e, c, `{"email":"student@example.com","token":"tok"}`, nil)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
