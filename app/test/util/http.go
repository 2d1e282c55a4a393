package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
)

// Request serves one request through e and returns the raw body and status.
func Request(e *echo.Echo, method string, target string, headers map[string]string, bodyBytes []byte) ([]byte, int) {
	var body io.Reader
	if len(bodyBytes) > 0 {
		body = bytes.NewBuffer(bodyBytes)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, req)

	return recorder.Body.Bytes(), recorder.Code
}

func RequestHTTP[T any](e *echo.Echo, method string, target string, headers map[string]string, body any) (T, int, error) {
	var res T
	var bodyBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return res, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyBytes = b
	}
	resBytes, code := Request(e, method, target, headers, bodyBytes)
	err := json.Unmarshal(resBytes, &res)

	return res, code, err
}
