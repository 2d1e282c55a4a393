package httpClientUtil

import (
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// NewRestyClient returns a resty client with the given request timeout.
// If requestTimeout is 0, no timeout will be set. Provider calls are attempted
// exactly once, so retries stay disabled.
func NewRestyClient(requestTimeout time.Duration, log *zap.Logger) *resty.Client {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", "cipherhacks-mailer/1.0")

	if requestTimeout > 0 {
		client.SetTimeout(requestTimeout)
	}

	client.OnError(func(req *resty.Request, err error) {
		log.Debug("outbound request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Error(err),
		)
	})

	return client
}
