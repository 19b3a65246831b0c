package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticTokenProvider struct {
	token string
}

func (p *staticTokenProvider) CurrentToken() string {
	return p.token
}

func newTestClient(baseURL, token string) contracts.RestClient {
	internalConfig := &config.InternalConfig{
		Backend: config.Backend{BaseUrl: baseURL},
	}
	return NewRestClient(internalConfig, &staticTokenProvider{token: token}, zap.NewNop())
}

func TestRestClientHeaders(t *testing.T) {
	t.Run("attaches bearer token when one is available", func(t *testing.T) {
		var gotAuthorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuthorization = r.Header.Get(constvars.HeaderAuthorization)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "token-123")
		err := client.Get(context.Background(), "/patients", &map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, "Bearer token-123", gotAuthorization)
	})

	t.Run("sends no authorization header without a token", func(t *testing.T) {
		var gotAuthorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuthorization = r.Header.Get(constvars.HeaderAuthorization)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		err := client.Get(context.Background(), "/patients", &map[string]string{})
		require.NoError(t, err)
		assert.Empty(t, gotAuthorization)
	})
}

func TestRestClientResponses(t *testing.T) {
	t.Run("decodes a JSON body into out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"id": 7, "name": "Jane Doe"}`))
		}))
		defer server.Close()

		out := struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}{}
		client := newTestClient(server.URL, "")
		err := client.Get(context.Background(), "/patients/7", &out)
		require.NoError(t, err)
		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, "Jane Doe", out.Name)
	})

	t.Run("assigns a plain text body to a string out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
			w.Write([]byte("Logged out successfully"))
		}))
		defer server.Close()

		var message string
		client := newTestClient(server.URL, "")
		err := client.Post(context.Background(), "/auth/logout", nil, &message)
		require.NoError(t, err)
		assert.Equal(t, "Logged out successfully", message)
	})

	t.Run("discards the body when out is nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"ignored": true}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		err := client.Delete(context.Background(), "/patients/7", nil)
		assert.NoError(t, err)
	})
}

func TestRestClientErrors(t *testing.T) {
	t.Run("propagates the backend status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Internal error"))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		err := client.Get(context.Background(), "/bookings", nil)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "Internal error")
		assert.False(t, customErr.IsTransport())
	})

	t.Run("flags an unreachable backend as a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := newTestClient(server.URL, "")
		err := client.Get(context.Background(), "/patients", nil)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsTransport())
		assert.Equal(t, constvars.ErrClientBackendUnreachable, customErr.ClientMessage)
	})

	t.Run("fails on an undecodable JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		out := map[string]string{}
		client := newTestClient(server.URL, "")
		err := client.Get(context.Background(), "/patients", &out)
		assert.Error(t, err)
	})
}

func TestRestClientGetBytes(t *testing.T) {
	t.Run("returns content type and raw payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
			w.Write([]byte("%PDF-1.4 fake"))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		contentType, data, err := client.GetBytes(context.Background(), "/bookings/1/results/pdf")
		require.NoError(t, err)
		assert.Equal(t, constvars.MIMEApplicationPDF, contentType)
		assert.Equal(t, []byte("%PDF-1.4 fake"), data)
	})

	t.Run("propagates non-2xx statuses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		_, _, err := client.GetBytes(context.Background(), "/reports/99/download")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
