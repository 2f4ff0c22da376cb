// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package api

import (
	"net/http"

	"github.com/DanWeld/ChatSystemSEP3/internal/auth"
	"github.com/DanWeld/ChatSystemSEP3/internal/errs"
	"github.com/DanWeld/ChatSystemSEP3/internal/logging"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
)

// Register creates an account on the backend and mints a token so the
// client is signed in immediately.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.backend.RegisterUser(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		respondError(w, r, errs.Wrap(errs.CodeInternal, "token generation failed", err))
		return
	}

	logging.Ctx(r.Context()).Info().Int64("user_id", user.ID).Msg("user registered")
	respondJSON(w, r, http.StatusCreated, models.AuthResponse{AccessToken: token, User: user})
}

// Login verifies credentials against the backend and mints a token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.backend.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		respondError(w, r, errs.Wrap(errs.CodeInternal, "token generation failed", err))
		return
	}

	respondJSON(w, r, http.StatusOK, models.AuthResponse{AccessToken: token, User: user})
}

// Me returns the authenticated user's current profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	user, err := h.backend.GetUser(r.Context(), id.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, user)
}
