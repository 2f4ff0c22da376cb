// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
)

func TestTokenSourceExtract(t *testing.T) {
	src := NewTokenSource("/api/v1/ws")

	tests := []struct {
		name      string
		target    string
		authz     string
		wantToken string
		wantErr   error
	}{
		{
			name:      "header on rest path",
			target:    "/api/v1/chatrooms",
			authz:     "Bearer abc123",
			wantToken: "abc123",
		},
		{
			name:      "header on push path",
			target:    "/api/v1/ws",
			authz:     "Bearer abc123",
			wantToken: "abc123",
		},
		{
			name:      "query fallback on push path",
			target:    "/api/v1/ws?access_token=qtok",
			wantToken: "qtok",
		},
		{
			name:    "query token on rest path fails closed",
			target:  "/api/v1/chatrooms?access_token=qtok",
			wantErr: ErrNoToken,
		},
		{
			name:    "query token on sibling path fails closed",
			target:  "/api/v1/wss?access_token=qtok",
			wantErr: ErrNoToken,
		},
		{
			name:    "no credential",
			target:  "/api/v1/chatrooms",
			wantErr: ErrNoToken,
		},
		{
			name:    "non-bearer scheme",
			target:  "/api/v1/chatrooms",
			authz:   "Basic dXNlcjpwYXNz",
			wantErr: ErrNoToken,
		},
		{
			name:    "bearer with empty token",
			target:  "/api/v1/chatrooms",
			authz:   "Bearer ",
			wantErr: ErrNoToken,
		},
		{
			name:      "header wins over query on push path",
			target:    "/api/v1/ws?access_token=qtok",
			authz:     "Bearer htok",
			wantToken: "htok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.authz != "" {
				r.Header.Set("Authorization", tt.authz)
			}

			token, err := src.Extract(r)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("Extract() = %q, want %q", token, tt.wantToken)
			}
		})
	}
}

// A token accepted over one transport must be accepted over the other:
// both paths feed the same validator, so extraction is the only place
// the transports differ.
func TestTransportSymmetry(t *testing.T) {
	m := newTestManager(t)
	src := NewTokenSource("/api/v1/ws")

	token, err := m.GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	viaHeader := httptest.NewRequest("GET", "/api/v1/chatrooms", nil)
	viaHeader.Header.Set("Authorization", "Bearer "+token)
	viaQuery := httptest.NewRequest("GET", "/api/v1/ws?access_token="+token, nil)

	headerTok, err := src.Extract(viaHeader)
	if err != nil {
		t.Fatalf("header extract: %v", err)
	}
	queryTok, err := src.Extract(viaQuery)
	if err != nil {
		t.Fatalf("query extract: %v", err)
	}
	if headerTok != queryTok {
		t.Fatal("transports extracted different tokens")
	}

	if _, err := m.ValidateToken(headerTok); err != nil {
		t.Errorf("header-sourced token rejected: %v", err)
	}
	if _, err := m.ValidateToken(queryTok); err != nil {
		t.Errorf("query-sourced token rejected: %v", err)
	}
}
