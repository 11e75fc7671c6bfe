package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestClient_RequestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenSource(staticToken("tok-123")))

	_, err := NewUsersClient(client).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))

	requestID := got.Get("X-Request-ID")
	_, err = uuid.Parse(requestID)
	assert.NoError(t, err, "X-Request-ID should be a uuid, got %q", requestID)
}

func TestClient_EmptyTokenSkipsAuthorization(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenSource(staticToken("")))

	_, err := NewUsersClient(client).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_ErrorEnvelopeBecomesDomainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"code":    "NOT_FOUND",
				"message": "user not found",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := NewUsersClient(client).Get(context.Background(), "u404")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "user not found", err.Error())
}

func TestClient_UndecodableErrorBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := NewUsersClient(client).List(context.Background())

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "HTTP_ERROR", domainErr.Code)
	assert.Contains(t, domainErr.Message, "502")
}

func TestClient_UnauthorizedHandler(t *testing.T) {
	t.Run("fires on 401", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		var fired int
		client := NewClient(srv.URL, WithUnauthorizedHandler(func() { fired++ }))

		_, err := NewUsersClient(client).List(context.Background())
		require.Error(t, err)
		assert.Equal(t, 1, fired)

		// Every 401 fires again; the handler must be idempotent.
		_, err = NewUsersClient(client).List(context.Background())
		require.Error(t, err)
		assert.Equal(t, 2, fired)
	})

	t.Run("does not fire on other failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		var fired int
		client := NewClient(srv.URL, WithUnauthorizedHandler(func() { fired++ }))

		_, err := NewUsersClient(client).List(context.Background())
		require.Error(t, err)
		assert.Zero(t, fired)
	})
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	client := NewClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewUsersClient(client).List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
