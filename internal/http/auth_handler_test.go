package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fjod/go_shop/internal/service"
	"github.com/fjod/go_shop/internal/store"
)

func newAuthHandler() *AuthHandler {
	users := store.NewMemoryUserStore()
	auth := service.NewAuthService(users, []byte("test-secret"), time.Hour)
	return NewAuthHandler(auth, 5*time.Second)
}

func postJSON(path, body string) *http.Request {
	r := httptest.NewRequest("POST", path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestRegister_Success(t *testing.T) {
	handler := newAuthHandler()
	recorder := httptest.NewRecorder()

	handler.Register(recorder, postJSON("/api/v1/auth/register",
		`{"name":"John Doe","email":"johndoe@example.com","password":"password123"}`))

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	var response RegisterResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.ID == "" {
		t.Error("expected a user id")
	}
	if response.Email != "johndoe@example.com" {
		t.Errorf("expected email 'johndoe@example.com', got '%s'", response.Email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	handler := newAuthHandler()

	first := httptest.NewRecorder()
	handler.Register(first, postJSON("/api/v1/auth/register",
		`{"name":"John Doe","email":"johndoe@example.com","password":"password123"}`))
	if first.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, first.Code)
	}

	second := httptest.NewRecorder()
	handler.Register(second, postJSON("/api/v1/auth/register",
		`{"name":"Impostor","email":"johndoe@example.com","password":"password456"}`))
	if second.Code != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, second.Code)
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"empty name", `{"name":" ","email":"a@b.com","password":"password123"}`},
		{"bad email", `{"name":"John","email":"not-an-email","password":"password123"}`},
		{"short password", `{"name":"John","email":"a@b.com","password":"short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAuthHandler()
			recorder := httptest.NewRecorder()
			handler.Register(recorder, postJSON("/api/v1/auth/register", tt.body))
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
			}
		})
	}
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	handler := newAuthHandler()

	register := httptest.NewRecorder()
	handler.Register(register, postJSON("/api/v1/auth/register",
		`{"name":"John Doe","email":"johndoe@example.com","password":"password123"}`))
	if register.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, register.Code)
	}

	login := httptest.NewRecorder()
	handler.Login(login, postJSON("/api/v1/auth/login",
		`{"email":"johndoe@example.com","password":"password123"}`))
	if login.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, login.Code, login.Body.String())
	}

	var response LoginResponseDTO
	if err := json.NewDecoder(login.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Token == "" {
		t.Error("expected a token")
	}

	wrong := httptest.NewRecorder()
	handler.Login(wrong, postJSON("/api/v1/auth/login",
		`{"email":"johndoe@example.com","password":"wrong"}`))
	if wrong.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, wrong.Code)
	}

	unknown := httptest.NewRecorder()
	handler.Login(unknown, postJSON("/api/v1/auth/login",
		`{"email":"nobody@example.com","password":"password123"}`))
	if unknown.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, unknown.Code)
	}
}
