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

// CreateGroupChat creates a group chat owned by the caller.
func (h *Handler) CreateGroupChat(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupChatRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	room, err := h.backend.CreateGroupChat(r.Context(), id.UserID, req.Name, req.Description, req.MemberIDs)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, room)
}

// AddMember adds a user to a group chat on the caller's authority; the
// backend checks the caller is an admin.
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req models.AddMemberRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	if err := h.backend.AddMember(r.Context(), roomID, id.UserID, req.UserID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

// RemoveMember removes a user from a group chat.
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	userID, err := pathID(r, "uid")
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	if err := h.backend.RemoveMember(r.Context(), roomID, id.UserID, userID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

// PromoteMember raises a member to admin.
func (h *Handler) PromoteMember(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	userID, err := pathID(r, "uid")
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	if err := h.backend.PromoteMember(r.Context(), roomID, id.UserID, userID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

// ListMembers returns a group chat's membership with roles.
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	members, err := h.backend.ListMembers(r.Context(), roomID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, members)
}

// MyChatRooms returns the rooms the caller belongs to.
func (h *Handler) MyChatRooms(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	rooms, err := h.backend.ListUserChatRooms(r.Context(), id.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rooms)
}

// PrivateChatRoom returns (creating if needed) the 1:1 room between the
// caller and the given user.
func (h *Handler) PrivateChatRoom(w http.ResponseWriter, r *http.Request) {
	otherID, err := pathID(r, "uid")
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	room, err := h.backend.GetPrivateChatRoom(r.Context(), id.UserID, otherID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, room)
}
