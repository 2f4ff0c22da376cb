// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package api

import (
	"net/http"

	"github.com/DanWeld/ChatSystemSEP3/internal/auth"
	"github.com/DanWeld/ChatSystemSEP3/internal/errs"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
)

// ListChatRooms returns all public rooms.
func (h *Handler) ListChatRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.backend.ListChatRooms(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rooms)
}

// CreateChatRoom creates a public room.
func (h *Handler) CreateChatRoom(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChatRoomRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	room, err := h.backend.CreateChatRoom(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, room)
}

// GetMessages returns a room's message history.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	messages, err := h.backend.GetMessages(r.Context(), roomID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, messages)
}

// SearchMessages returns the room's messages matching ?query=.
func (h *Handler) SearchMessages(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, r, errs.New(errs.CodeInvalidArgument, "query parameter is required"))
		return
	}

	messages, err := h.backend.SearchMessages(r.Context(), roomID, query)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, messages)
}

// SendMessage posts a message over REST. The dispatcher persists it and
// pushes ReceiveMessage to the room's connected members.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req models.SendMessageRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	msg, err := h.dispatcher.SendMessage(r.Context(), roomID, id.UserID, req.Text)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, msg)
}

// EditMessage replaces a message's text. The backend enforces that only
// the sender may edit; success pushes MessageEdited to the room.
func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := pathID(r, "mid")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req models.EditMessageRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	msg, err := h.dispatcher.EditMessage(r.Context(), messageID, id.UserID, req.Text)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, msg)
}

// DeleteMessage soft-deletes a message. The backend decides whether the
// caller is allowed to; success pushes MessageDeleted to the room.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := pathID(r, "mid")
	if err != nil {
		respondError(w, r, err)
		return
	}

	id, _ := auth.IdentityFromContext(r.Context())
	msg, err := h.dispatcher.DeleteMessage(r.Context(), messageID, id.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, msg)
}
