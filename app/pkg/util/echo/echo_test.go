package echoutil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/api/client/exception"
	"backend/cipherhacks-mailer/app/api/client/response"
	"backend/cipherhacks-mailer/app/internal/runtime"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
	echoUtil "backend/cipherhacks-mailer/app/pkg/util/echo"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = echoUtil.NewHTTPErrorHandler(runtime.Resource{Logger: zap.NewNop()})
	return e
}

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		handlerErr   error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "prepared body",
			handlerErr:   echo.NewHTTPError(http.StatusTooManyRequests, response.ToErrorResponse(response.ErrMsgTooManyRequests)),
			expectedCode: http.StatusTooManyRequests,
			expectedBody: `{"error":"Too many requests"}`,
		},
		{
			name:         "framework message is replaced by status text",
			handlerErr:   echo.NewHTTPError(http.StatusBadRequest, "Syntax error: offset=3, error=invalid character 'x'"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Bad Request"}`,
		},
		{
			name:         "sentinel",
			handlerErr:   exception.ErrorWithContext(exception.ErrCaptchaVerificationFailed, "hostname", "evil.example"),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"Captcha verification failed"}`,
		},
		{
			name:         "plain error",
			handlerErr:   errors.New("dial tcp 10.0.0.1: refused"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			e.GET("/boom", func(c echo.Context) error { return tt.handlerErr })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestRequestIDMiddleware_StoresIDInContext(t *testing.T) {
	e := newEcho()
	e.Use(echoUtil.SetupRequestIDMiddleware())

	var seen string
	e.GET("/id", func(c echo.Context) error {
		seen = ctxutil.RequestID(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	e := newEcho()
	e.Use(echoUtil.SetupRequestIDMiddleware())

	var seen string
	e.GET("/id", func(c echo.Context) error {
		seen = ctxutil.RequestID(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(echo.HeaderXRequestID, "edge-123")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "edge-123", seen)
}
