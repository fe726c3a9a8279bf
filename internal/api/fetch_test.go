package api

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

type payload struct {
	Value string `json:"value"`
}

func newRequest(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	return req
}

func TestFetchJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ContentTypeJSON)
		_, _ = io.WriteString(w, `{"value":"ok"}`)
	}))
	defer srv.Close()

	out, err := FetchJSON[payload](srv.Client(), newRequest(t, srv.URL))

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Value)
}

func TestFetchJSON_StatusErrorCarriesBodyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "Internal Server Error: upstream exploded")
	}))
	defer srv.Close()

	_, err := FetchJSON[payload](srv.Client(), newRequest(t, srv.URL))

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Internal Server Error: upstream exploded", err.Error())
	assert.NotContains(t, err.Error(), InvalidJSONPrefix)
}

func TestFetchJSON_StatusErrorEmptyBodyFallsBackToStatusLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := FetchJSON[payload](srv.Client(), newRequest(t, srv.URL))

	require.Error(t, err)
	assert.Equal(t, "HTTP 502 Bad Gateway", err.Error())
}

func TestFetchJSON_StatusErrorUnreadableBody(t *testing.T) {
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Status:     "500 Internal Server Error",
			Body:       io.NopCloser(failingReader{}),
		}, nil
	})

	_, err := FetchJSON[payload](doer, newRequest(t, "http://backend.invalid"))

	require.Error(t, err)
	assert.Equal(t, "HTTP 500 Internal Server Error", err.Error())
}

func TestFetchJSON_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	_, err := FetchJSON[payload](srv.Client(), newRequest(t, srv.URL))

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindInvalidJSON, apiErr.Kind)
	assert.Equal(t, "Invalid JSON response: <html>not json</html>", err.Error())
}

func TestFetchJSON_TransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		return nil, cause
	})

	_, err := FetchJSON[payload](doer, newRequest(t, "http://backend.invalid"))

	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.ErrorIs(t, err, cause)
	assert.True(t, strings.HasPrefix(err.Error(), NetworkErrorPrefix))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsNetworkError(t *testing.T) {
	assert.False(t, IsNetworkError(errors.New("plain")))
	assert.False(t, IsNetworkError(nil))
	assert.True(t, IsNetworkError(&Error{Kind: KindStatus, Message: "x"}))
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindTransport, "transport"},
		{KindStatus, "status"},
		{KindInvalidJSON, "invalid_json"},
		{ErrorKind(42), "unknown"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.kind.String())
	}
}
