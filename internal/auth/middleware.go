// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package auth

import (
	"context"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/DanWeld/ChatSystemSEP3/internal/logging"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
)

// Identity is the authenticated principal attached to the request
// context after successful validation.
type Identity struct {
	UserID   int64
	Username string
}

type identityKey struct{}

// ContextWithIdentity attaches an identity to ctx.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Middleware enforces authentication on every route it wraps, using
// the dual-transport extraction rules and the shared validator.
type Middleware struct {
	manager *Manager
	source  *TokenSource
}

// NewMiddleware builds the authentication middleware.
func NewMiddleware(manager *Manager, source *TokenSource) *Middleware {
	return &Middleware{manager: manager, source: source}
}

// Authenticate rejects requests without a valid token and attaches the
// resulting Identity to the context for downstream handlers.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.source.Extract(r)
		if err != nil {
			unauthorized(w, "authentication required")
			return
		}

		claims, err := m.manager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().
				Err(err).
				Str("path", r.URL.Path).
				Msg("token rejected")
			unauthorized(w, "invalid or expired token")
			return
		}

		ctx := ContextWithIdentity(r.Context(), Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized writes a 401 in the standard envelope. Kept local to
// avoid a dependency on the api package.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	resp := models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    "unauthenticated",
			Message: message,
		},
	}
	//nolint:errcheck // nothing to do if the client is gone
	_ = json.NewEncoder(w).Encode(resp)
}
