package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), time.Hour)

	tok, err := svc.Issue(42, "demo@test.io")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "demo@test.io" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "demo@test.io")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), -1*time.Second)

	tok, err := svc.Issue(1, "a@b.c")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := svc.Verify(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService([]byte("right-secret"), time.Hour).Issue(2, "a@b.c")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService([]byte("wrong-secret"), time.Hour).Verify(tok)
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)
	tok, err := svc.Issue(3, "a@b.c")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	if _, err := svc.Verify(tampered); err == nil {
		t.Fatalf("expected error for tampered signature, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)
	if _, err := svc.Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestMiddleware_NoToken(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)
	h := svc.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run without a token")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "No token provided" {
		t.Fatalf("error message: got %q want %q", body["error"], "No token provided")
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)
	h := svc.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run with a bad token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Invalid token" {
		t.Fatalf("error message: got %q want %q", body["error"], "Invalid token")
	}
}

func TestMiddleware_PassesClaims(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)
	tok, err := svc.Issue(7, "demo@test.io")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	var got *Claims
	h := svc.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got == nil {
		t.Fatalf("claims not found in context")
	}
	if got.UserID != 7 {
		t.Fatalf("userID mismatch: got %d want 7", got.UserID)
	}
}
