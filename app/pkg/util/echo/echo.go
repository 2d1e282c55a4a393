package echoutil

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/api/client/exception"
	"backend/cipherhacks-mailer/app/api/client/response"
	"backend/cipherhacks-mailer/app/internal/runtime"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
)

func SetupCORSMiddleware(res runtime.Resource) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: splitOrigins(res.Config.RouterConfig.AllowedOrigins),
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderXRequestID,
			"Cf-Turnstile-Token",
		},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
	})
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRequestIDMiddleware issues a uuid per request and copies it into the request context
// so managers and provider clients can log it.
func SetupRequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			req := c.Request()
			c.SetRequest(req.WithContext(ctxutil.RequestIDKey.Set(req.Context(), requestID)))
		},
	})
}

func SetupLoggerMiddleware(res runtime.Resource) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError:  true,
		LogLatency:   true,
		LogProtocol:  true,
		LogRemoteIP:  true,
		LogHost:      true,
		LogMethod:    true,
		LogURI:       true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogRequestID: true,
		LogUserAgent: true,
		LogStatus:    true,
		LogError:     true,
		Skipper: func(c echo.Context) bool {
			return strings.EqualFold(c.Request().URL.Path, "/health") || strings.EqualFold(c.Request().URL.Path, "/favicon.ico")
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				// Request context
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("host", v.Host),

				// Request details
				zap.String("method", v.Method),
				zap.String("uri_path", v.URIPath),
				zap.String("route", v.RoutePath),
				zap.String("user_agent", v.UserAgent),
				zap.String("protocol", v.Protocol),

				// Response details
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				res.Logger.Error("request failed", append(fields, zap.Error(v.Error))...)
			} else {
				res.Logger.Info("request", fields...)
			}

			return nil
		},
	})
}

// NewHTTPErrorHandler renders every framework error as {"error": "..."}.
// Only a prepared response.ErrorResponse or the plain status text ever reaches the caller.
func NewHTTPErrorHandler(res runtime.Resource) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		body := response.ToErrorResponse(response.ErrMsgInternalServerError)

		var httpErr *echo.HTTPError
		if status, prepared, ok := PreparedErrorResponse(err); ok {
			code, body = status, prepared
		} else if errors.As(err, &httpErr) {
			code = httpErr.Code
			if code != http.StatusInternalServerError {
				body = response.ToErrorResponse(http.StatusText(code))
			}
		} else {
			code, body = exception.ToClientError(err)
		}

		if code >= http.StatusInternalServerError {
			res.Logger.Error("Unhandled error",
				zap.String("request_id", ctxutil.RequestID(c.Request().Context())),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			res.Logger.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}

// BindAndValidate tags bind failures with exception.ErrFailedBindingData and returns
// the validator's *echo.HTTPError untouched.
func BindAndValidate(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return exception.JoinErrors(exception.ErrFailedBindingData, err)
	}
	return c.Validate(payload)
}

// PreparedErrorResponse extracts a caller-safe body carried by an *echo.HTTPError, if any.
func PreparedErrorResponse(err error) (int, response.ErrorResponse, bool) {
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		return 0, response.ErrorResponse{}, false
	}
	body, ok := httpErr.Message.(response.ErrorResponse)
	return httpErr.Code, body, ok
}
