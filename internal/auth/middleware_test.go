// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestMiddleware(t *testing.T) *Middleware {
	t.Helper()
	return NewMiddleware(newTestManager(t), NewTokenSource("/api/v1/ws"))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	mw := newTestMiddleware(t)
	m := newTestManager(t)
	token, err := m.GenerateToken(42, "bob")
	if err != nil {
		t.Fatal(err)
	}

	var got Identity
	var ok bool
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = IdentityFromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/api/v1/chatrooms", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !ok {
		t.Fatal("identity missing from context")
	}
	if got.UserID != 42 || got.Username != "bob" {
		t.Errorf("identity = %+v", got)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	mw := newTestMiddleware(t)

	tests := []struct {
		name   string
		target string
		authz  string
	}{
		{"no credential", "/api/v1/chatrooms", ""},
		{"garbage token", "/api/v1/chatrooms", "Bearer nope"},
		{"query token off push path", "/api/v1/chatrooms?access_token=nope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.authz != "" {
				r.Header.Set("Authorization", tt.authz)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if called {
				t.Error("handler ran despite failed authentication")
			}
			if !strings.Contains(w.Body.String(), `"status":"error"`) {
				t.Errorf("body not in error envelope: %s", w.Body.String())
			}
		})
	}
}

func TestIdentityFromContext_Absent(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if _, ok := IdentityFromContext(r.Context()); ok {
		t.Error("identity should be absent on a bare context")
	}
}
