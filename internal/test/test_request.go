package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github/chapool/solana-service/internal/api"
)

// PerformRequest runs a recorded request against the server's echo instance.
// A non-nil body is marshaled to JSON.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

type successEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ParseSuccess asserts the success envelope and unmarshals its data into v.
func ParseSuccess(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()

	var envelope successEnvelope
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", res.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}

// ParseError asserts the error envelope and returns its error string.
func ParseError(t *testing.T, res *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &envelope))
	require.False(t, envelope.Success, "expected error envelope, got: %s", res.Body.String())
	require.NotEmpty(t, envelope.Error)

	return envelope.Error
}
