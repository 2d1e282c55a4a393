package turnstile_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/internal/config"
	"backend/cipherhacks-mailer/app/pkg/turnstile"
	httpClientUtil "backend/cipherhacks-mailer/app/pkg/util/httpclient"
)

type capturedForm struct {
	secret   string
	response string
	remoteIP string
	hasIP    bool
}

func newServer(t *testing.T, status int, body string, calls *int32, captured *capturedForm) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		captured.secret = r.PostForm.Get("secret")
		captured.response = r.PostForm.Get("response")
		captured.remoteIP = r.PostForm.Get("remoteip")
		_, captured.hasIP = r.PostForm["remoteip"]
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newVerifier(url string) turnstile.Verifier {
	logger := zap.NewNop()
	return turnstile.NewVerifier(
		httpClientUtil.NewRestyClient(5*time.Second, logger),
		config.TurnstileConfig{SecretKey: "server-secret", VerifyURL: url},
		logger,
	)
}

func TestVerify_Success(t *testing.T) {
	var calls int32
	var form capturedForm
	srv := newServer(t, http.StatusOK, `{"success":true,"hostname":"cipherhacks.tech"}`, &calls, &form)

	result, err := newVerifier(srv.URL).Verify(context.Background(), "client-token", "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "cipherhacks.tech", result.Hostname)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "server-secret", form.secret)
	assert.Equal(t, "client-token", form.response)
	assert.Equal(t, "203.0.113.7", form.remoteIP)
}

func TestVerify_UnknownRemoteIPIsOmitted(t *testing.T) {
	var calls int32
	var form capturedForm
	srv := newServer(t, http.StatusOK, `{"success":true}`, &calls, &form)

	_, err := newVerifier(srv.URL).Verify(context.Background(), "client-token", "")

	require.NoError(t, err)
	assert.False(t, form.hasIP)
	assert.Empty(t, form.remoteIP)
}

func TestVerify_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectErr   error
		expectError bool
		errorCodes  []string
	}{
		{
			name:       "provider says no",
			status:     http.StatusOK,
			body:       `{"success":false,"error-codes":["invalid-input-response"]}`,
			errorCodes: []string{"invalid-input-response"},
		},
		{
			name:        "missing success field",
			status:      http.StatusOK,
			body:        `{"hostname":"cipherhacks.tech"}`,
			expectErr:   turnstile.ErrMissingSuccess,
			expectError: true,
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `<html>oops</html>`,
			expectErr:   turnstile.ErrMalformedBody,
			expectError: true,
		},
		{
			name:        "non-2xx status",
			status:      http.StatusInternalServerError,
			body:        `{"success":true}`,
			expectErr:   turnstile.ErrUnexpectedStatus,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			var form capturedForm
			srv := newServer(t, tt.status, tt.body, &calls, &form)

			result, err := newVerifier(srv.URL).Verify(context.Background(), "client-token", "")

			assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "exactly one attempt, no retries")
			assert.False(t, result.Success)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.errorCodes, result.ErrorCodes)
		})
	}
}

func TestVerify_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	result, err := newVerifier(url).Verify(context.Background(), "client-token", "")

	require.Error(t, err)
	assert.False(t, result.Success)
}
