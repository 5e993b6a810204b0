package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fjod/go_shop/internal/service"
	"github.com/fjod/go_shop/internal/store"
)

func TestAuthMiddleware_PassesUserIDThrough(t *testing.T) {
	users := store.NewMemoryUserStore()
	auth := service.NewAuthService(users, []byte("test-secret"), time.Hour)

	user, err := auth.Register(context.Background(), "John Doe", "johndoe@example.com", "password123")
	if err != nil {
		t.Fatal(err)
	}
	token, err := auth.Login(context.Background(), "johndoe@example.com", "password123")
	if err != nil {
		t.Fatal(err)
	}

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = getUserIDFromContext(r.Context())
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/cart", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	AuthMiddleware(auth)(next).ServeHTTP(recorder, request)

	if gotUserID != user.ID {
		t.Errorf("expected user id '%s', got '%s'", user.ID, gotUserID)
	}
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	users := store.NewMemoryUserStore()
	auth := service.NewAuthService(users, []byte("test-secret"), time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("GET", "/api/v1/cart", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			AuthMiddleware(auth)(next).ServeHTTP(recorder, request)

			if recorder.Code != http.StatusUnauthorized {
				t.Errorf("expected %d, got %d", http.StatusUnauthorized, recorder.Code)
			}
		})
	}
}
