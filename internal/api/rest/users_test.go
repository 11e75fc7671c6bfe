package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatboard/chatboard-go/internal/domain"
)

func TestUsersClient_CRUD(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var calls []call

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]*domain.User{{ID: "u1"}, {ID: "u2"}})
	})
	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(&domain.User{ID: r.PathValue("id")})
	})
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		var in domain.CreateUser
		json.NewDecoder(r.Body).Decode(&in)
		json.NewEncoder(w).Encode(&domain.User{ID: "u3", Email: in.Email})
	})
	mux.HandleFunc("PUT /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(&domain.User{ID: r.PathValue("id"), FirstName: "Updated"})
	})
	mux.HandleFunc("DELETE /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{method: r.Method, path: r.URL.Path})
		mux.ServeHTTP(w, r)
	}))
	defer srv.Close()

	users := NewUsersClient(NewClient(srv.URL))
	ctx := context.Background()

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	user, err := users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	created, err := users.Create(ctx, &domain.CreateUser{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", created.Email)

	updated, err := users.Update(ctx, "u1", &domain.UpdateUser{})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.FirstName)

	require.NoError(t, users.Delete(ctx, "u2"))

	wantPaths := []string{"/users", "/users/u1", "/users", "/users/u1", "/users/u2"}
	gotPaths := make([]string, len(calls))
	for i, c := range calls {
		gotPaths[i] = c.path
	}
	assert.Equal(t, wantPaths, gotPaths)
	assert.Equal(t, http.MethodDelete, calls[4].method)
}
