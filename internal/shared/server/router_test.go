package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ats-backend/internal/shared/config"
)

func TestRouterHealth(t *testing.T) {
	r := NewRouter(config.Config{Port: "8080"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestRouterEndToEndWithMemoryRepos(t *testing.T) {
	r := NewRouter(config.Config{Port: "8080"})

	create := httptest.NewRequest(http.MethodPost, "/api/v1/resumes",
		strings.NewReader(`{"title":"Backend Engineer","fullName":"Jane Doe","email":"jane@example.com","phone":"555-0100","summary":"Backend engineer with python and django experience building reliable production services across several teams and platforms.","experiences":[{"company":"Acme","position":"Engineer","description":"Improved throughput by 40% using python."}],"skills":[{"name":"Python"},{"name":"Django"}]}`))
	create.Header.Set("X-Guest-Id", "g-1")
	create.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, create)
	if w.Code != http.StatusCreated {
		t.Fatalf("create resume: %d: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	idStart := strings.Index(body, `"id":"`) + len(`"id":"`)
	resumeID := body[idStart : idStart+strings.Index(body[idStart:], `"`)]

	analyze := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/"+resumeID+"/analyze",
		strings.NewReader(`{"jobDescription":"Looking for a python and django engineer."}`))
	analyze.Header.Set("X-Guest-Id", "g-1")
	analyze.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, analyze)
	if w.Code != http.StatusCreated {
		t.Fatalf("analyze: %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"overallScore"`) {
		t.Fatalf("expected score in %s", w.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":7000": ":7000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
