package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"recipeshare/domain"
)

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		if req.Password != "good-password" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "session-token",
			"user":  domain.UserResponse{ID: "u1", Username: "cook", Email: req.Email},
		})
	})

	mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid or expired token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user": domain.UserResponse{ID: "u1", Username: "cook", Email: "cook@example.com"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionLoginSuccess(t *testing.T) {
	srv := newAuthServer(t)
	store := &MemoryTokenStore{}
	session := NewSession(New(srv.URL+"/api", store), store)

	res := session.Login(context.Background(), "cook@example.com", "good-password")
	if !res.Success {
		t.Fatalf("login failed: %q", res.Error)
	}

	token, _ := store.Read()
	if token != "session-token" {
		t.Errorf("token not persisted, got %q", token)
	}
	if u := session.CurrentUser(); u == nil || u.Username != "cook" {
		t.Errorf("current user not set: %+v", u)
	}
}

func TestSessionLoginFailure(t *testing.T) {
	srv := newAuthServer(t)
	store := &MemoryTokenStore{}
	session := NewSession(New(srv.URL+"/api", store), store)

	res := session.Login(context.Background(), "cook@example.com", "wrong")
	if res.Success {
		t.Fatal("login succeeded with a bad password")
	}
	if res.Error == "" {
		t.Error("expected an error message")
	}
	if token, _ := store.Read(); token != "" {
		t.Errorf("token persisted after a failed login: %q", token)
	}
	if session.CurrentUser() != nil {
		t.Error("user set after a failed login")
	}
}

func TestSessionLoadRestoresUser(t *testing.T) {
	srv := newAuthServer(t)
	store := &MemoryTokenStore{}
	_ = store.Write("session-token")
	session := NewSession(New(srv.URL+"/api", store), store)

	if !session.Loading() {
		t.Fatal("session must start in the loading state")
	}
	session.Load(context.Background())

	if session.Loading() {
		t.Error("loading flag not cleared")
	}
	if u := session.CurrentUser(); u == nil || u.ID != "u1" {
		t.Errorf("user not restored: %+v", u)
	}
}

func TestSessionLoadDiscardsRejectedToken(t *testing.T) {
	srv := newAuthServer(t)
	store := &MemoryTokenStore{}
	_ = store.Write("stale-token")
	session := NewSession(New(srv.URL+"/api", store), store)

	session.Load(context.Background())

	if session.Loading() {
		t.Error("loading flag not cleared")
	}
	if session.CurrentUser() != nil {
		t.Error("user set from a rejected token")
	}
	if token, _ := store.Read(); token != "" {
		t.Errorf("rejected token not discarded: %q", token)
	}
}

func TestSessionLoadWithoutToken(t *testing.T) {
	srv := newAuthServer(t)
	store := &MemoryTokenStore{}
	session := NewSession(New(srv.URL+"/api", store), store)

	session.Load(context.Background())

	if session.Loading() {
		t.Error("loading flag not cleared")
	}
	if session.CurrentUser() != nil {
		t.Error("user set without a token")
	}
}

func TestSessionLogout(t *testing.T) {
	srv := newAuthServer(t)
	store := &MemoryTokenStore{}
	session := NewSession(New(srv.URL+"/api", store), store)

	if res := session.Login(context.Background(), "cook@example.com", "good-password"); !res.Success {
		t.Fatalf("login failed: %q", res.Error)
	}
	session.Logout()

	if token, _ := store.Read(); token != "" {
		t.Errorf("token survived logout: %q", token)
	}
	if session.CurrentUser() != nil {
		t.Error("user survived logout")
	}
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileTokenStore(path)

	if token, err := store.Read(); err != nil || token != "" {
		t.Fatalf("missing file must read as empty, got %q / %v", token, err)
	}

	if err := store.Write("persisted-token"); err != nil {
		t.Fatal(err)
	}
	if token, _ := store.Read(); token != "persisted-token" {
		t.Errorf("got token %q", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if token, _ := store.Read(); token != "" {
		t.Errorf("token survived clear: %q", token)
	}
	// Clearing an already-empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("second clear failed: %v", err)
	}
}
