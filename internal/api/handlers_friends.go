// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package api

import (
	"net/http"

	"github.com/DanWeld/ChatSystemSEP3/internal/auth"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
)

// ListFriends returns the caller's friend list.
func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	friends, err := h.backend.ListFriends(r.Context(), id.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, friends)
}

// ListFriendRequests returns pending requests addressed to the caller.
func (h *Handler) ListFriendRequests(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	requests, err := h.backend.ListIncomingRequests(r.Context(), id.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, requests)
}

// SendFriendRequest targets a user by username.
func (h *Handler) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	var req models.SendFriendRequestRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	fr, err := h.backend.SendFriendRequest(r.Context(), id.UserID, req.Username)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, fr)
}

// RespondFriendRequest accepts or declines a pending request.
func (h *Handler) RespondFriendRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req models.RespondFriendRequestRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	fr, err := h.backend.RespondFriendRequest(r.Context(), requestID, req.Accept)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, fr)
}

// RemoveFriend deletes a friendship in both directions.
func (h *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	friendID, err := pathID(r, "friendId")
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	if err := h.backend.RemoveFriend(r.Context(), id.UserID, friendID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}
