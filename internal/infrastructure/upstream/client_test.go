package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer backend.Close()

	c := New(backend.URL, time.Second, zerolog.Nop())
	if _, err := c.Get(context.Background(), "tok-123", "/salesperson/cars", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestClient_NoAuthorizationHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	c := New(backend.URL, time.Second, zerolog.Nop())
	if _, err := c.Post(context.Background(), "", "/auth/login", []byte(`{}`)); err != nil {
		t.Fatalf("post: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
}

func TestClient_UnauthorizedWithTokenIsTokenRejected(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	c := New(backend.URL, time.Second, zerolog.Nop())
	_, err := c.Get(context.Background(), "stale", "/mechanic/services", nil)
	if !errors.Is(err, domain.ErrTokenRejected) {
		t.Fatalf("expected ErrTokenRejected, got %v", err)
	}
}

func TestClient_UnauthorizedWithoutTokenIsUpstreamError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid username or password"}`))
	}))
	defer backend.Close()

	c := New(backend.URL, time.Second, zerolog.Nop())
	_, err := c.Post(context.Background(), "", "/auth/login", []byte(`{}`))

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusUnauthorized || ue.Message != "Invalid username or password" {
		t.Fatalf("unexpected upstream error %+v", ue)
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused from here on

	c := New(backend.URL, time.Second, zerolog.Nop())
	_, err := c.Get(context.Background(), "tok", "/customer/invoices", nil)
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{"message field wins", `{"message":"no such car","error":"other"}`, "no such car"},
		{"error field fallback", `{"error":"boom"}`, "boom"},
		{"neither", `{"status":500}`, ""},
		{"not json", `<html>502</html>`, ""},
		{"empty", ``, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errorMessage([]byte(tc.payload)); got != tc.want {
				t.Fatalf("errorMessage(%q) = %q, want %q", tc.payload, got, tc.want)
			}
		})
	}
}

func TestResource(t *testing.T) {
	if got := resource("/salesperson/cars/search"); got != "salesperson" {
		t.Fatalf("resource = %q", got)
	}
	if got := resource("/health"); got != "health" {
		t.Fatalf("resource = %q", got)
	}
}
