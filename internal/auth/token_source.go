// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package auth

import (
	"errors"
	"net/http"
	"strings"
)

// ErrNoToken indicates no credential was presented on an allowed
// transport for the request path.
var ErrNoToken = errors.New("no token presented")

// queryTokenParam is the query parameter browsers use on the push
// endpoint, where WebSocket clients cannot set request headers.
const queryTokenParam = "access_token"

// TokenSource extracts bearer tokens from requests under the
// dual-transport rules: the Authorization header works everywhere; the
// access_token query parameter is honored only on the push path.
type TokenSource struct {
	pushPath string
}

// NewTokenSource builds a source that treats pushPath as the only
// route where query-parameter credentials are acceptable.
func NewTokenSource(pushPath string) *TokenSource {
	return &TokenSource{pushPath: pushPath}
}

// Extract returns the raw token from r, or ErrNoToken. The header wins
// when both transports carry a credential. Query fallback is evaluated
// strictly against the push path; everywhere else it fails closed.
func (s *TokenSource) Extract(r *http.Request) (string, error) {
	if h := r.Header.Get("Authorization"); h != "" {
		const prefix = "Bearer "
		if !strings.HasPrefix(h, prefix) {
			return "", ErrNoToken
		}
		token := strings.TrimSpace(strings.TrimPrefix(h, prefix))
		if token == "" {
			return "", ErrNoToken
		}
		return token, nil
	}

	if r.URL.Path == s.pushPath {
		if token := r.URL.Query().Get(queryTokenParam); token != "" {
			return token, nil
		}
	}

	return "", ErrNoToken
}
