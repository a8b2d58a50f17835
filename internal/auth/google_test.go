package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestStartRedirectsToGoogle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("client-id", "client-secret", "https://api.example.com/callback", "https://app.example.com")
	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	location := w.Header().Get("Location")
	if !strings.Contains(location, "accounts.google.com") {
		t.Fatalf("expected redirect to google, got %q", location)
	}
	if !strings.Contains(location, "state=") {
		t.Fatalf("expected state param in %q", location)
	}
}

func TestStartRequiresConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("", "", "", "https://app.example.com")
	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unconfigured auth, got %d", w.Code)
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("client-id", "client-secret", "https://api.example.com/callback", "https://app.example.com")
	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=bogus&code=abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown state, got %d", w.Code)
	}
}

func TestStateStoreConsumeOnce(t *testing.T) {
	store := newStateStore()
	store.put("s1", time.Now().Add(time.Minute))

	if !store.consume("s1") {
		t.Fatal("expected first consume to succeed")
	}
	if store.consume("s1") {
		t.Fatal("expected second consume to fail")
	}
}

func TestStateStoreExpiry(t *testing.T) {
	store := newStateStore()
	store.put("s1", time.Now().Add(-time.Second))
	if store.consume("s1") {
		t.Fatal("expected expired state to be rejected")
	}
}

func TestAppendToken(t *testing.T) {
	got, err := appendToken("https://app.example.com/login?next=%2Fdash", "tok123")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !strings.Contains(got, "token=tok123") || !strings.Contains(got, "next=") {
		t.Fatalf("unexpected url %q", got)
	}

	if _, err := appendToken("", "tok"); err == nil {
		t.Fatal("expected error for empty redirect url")
	}
}
