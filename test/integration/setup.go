package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/chatboard/chatboard-go/internal/api/rest"
	"github.com/chatboard/chatboard-go/internal/domain"
	"github.com/chatboard/chatboard-go/internal/session"
)

// fakeAPI is an in-memory stand-in for the chatboard backend, good enough
// to exercise the whole client stack over real HTTP.
type fakeAPI struct {
	mu      sync.Mutex
	nextID  int
	users   map[string]*domain.User
	boards  map[string]*domain.Board
	columns map[string]*domain.Column
	cards   map[string]*domain.Card
	token   string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users:   map[string]*domain.User{},
		boards:  map[string]*domain.Board{},
		columns: map[string]*domain.Column{},
		cards:   map[string]*domain.Card{},
		token:   "integration-token",
	}
}

func (f *fakeAPI) id(prefix string) string {
	f.nextID++
	return prefix + strconv.Itoa(f.nextID)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds domain.Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "bad credentials")
			return
		}
		writeJSON(w, http.StatusOK, &domain.Session{
			Token:     f.token,
			UserID:    "u0",
			ExpiresAt: time.Now().Add(time.Hour),
		})
	})

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+f.token {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			next(w, r)
		}
	}

	mux.HandleFunc("GET /users", authed(func(w http.ResponseWriter, r *http.Request) {
		out := make([]*domain.User, 0, len(f.users))
		for _, u := range f.users {
			out = append(out, u)
		}
		writeJSON(w, http.StatusOK, out)
	}))
	mux.HandleFunc("POST /users", authed(func(w http.ResponseWriter, r *http.Request) {
		var in domain.CreateUser
		json.NewDecoder(r.Body).Decode(&in)
		user := &domain.User{
			ID:        f.id("u"),
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Status:    domain.UserActive,
			CreatedAt: time.Now(),
		}
		f.users[user.ID] = user
		writeJSON(w, http.StatusCreated, user)
	}))
	mux.HandleFunc("DELETE /users/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if _, ok := f.users[id]; !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("user %s not found", id))
			return
		}
		delete(f.users, id)
		w.WriteHeader(http.StatusNoContent)
	}))

	mux.HandleFunc("POST /boards", authed(func(w http.ResponseWriter, r *http.Request) {
		var in domain.Board
		json.NewDecoder(r.Body).Decode(&in)
		board := &domain.Board{ID: f.id("b"), Name: in.Name, OwnerID: "u0", CreatedAt: time.Now()}
		f.boards[board.ID] = board
		writeJSON(w, http.StatusCreated, board)
	}))
	mux.HandleFunc("POST /columns", authed(func(w http.ResponseWriter, r *http.Request) {
		var in domain.Column
		json.NewDecoder(r.Body).Decode(&in)
		column := &domain.Column{ID: f.id("col"), BoardID: in.BoardID, Name: in.Name}
		for _, existing := range f.columns {
			if existing.BoardID == column.BoardID {
				column.Position++
			}
		}
		f.columns[column.ID] = column
		writeJSON(w, http.StatusCreated, column)
	}))
	mux.HandleFunc("POST /cards", authed(func(w http.ResponseWriter, r *http.Request) {
		var in domain.Card
		json.NewDecoder(r.Body).Decode(&in)
		card := &domain.Card{ID: f.id("c"), ColumnID: in.ColumnID, Title: in.Title, CreatedAt: time.Now()}
		for _, existing := range f.cards {
			if existing.ColumnID == card.ColumnID {
				card.Position++
			}
		}
		f.cards[card.ID] = card
		writeJSON(w, http.StatusCreated, card)
	}))
	mux.HandleFunc("POST /cards/move", authed(func(w http.ResponseWriter, r *http.Request) {
		var move domain.CardMove
		json.NewDecoder(r.Body).Decode(&move)
		card, ok := f.cards[move.CardID]
		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "card not found")
			return
		}
		card.ColumnID = move.ToColumnID
		card.Position = move.Position
		writeJSON(w, http.StatusOK, card)
	}))
	mux.HandleFunc("GET /columns/{id}/cards", authed(func(w http.ResponseWriter, r *http.Request) {
		columnID := r.PathValue("id")
		out := []*domain.Card{}
		for _, card := range f.cards {
			if card.ColumnID == columnID {
				out = append(out, card)
			}
		}
		writeJSON(w, http.StatusOK, out)
	}))

	return mux
}

// env wires a real client against the fake server.
type env struct {
	srv      *httptest.Server
	sessions *session.Store
	client   *rest.Client
}

func setupEnv(t *testing.T) *env {
	t.Helper()

	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := rest.NewClient(srv.URL, rest.WithTokenSource(sessions))

	return &env{srv: srv, sessions: sessions, client: client}
}
