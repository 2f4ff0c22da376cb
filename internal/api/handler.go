// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package api provides HTTP routing and handlers using Chi router.
// Handlers translate HTTP requests into backend calls; mutations that
// other room members need to hear about go through the dispatcher so
// the WebSocket broadcast happens only after the backend accepts.
package api

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/DanWeld/ChatSystemSEP3/internal/auth"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
	"github.com/DanWeld/ChatSystemSEP3/internal/websocket"
)

// Backend is the slice of the backend client the handlers call. The
// message mutations are absent here: those go through the Dispatcher.
type Backend interface {
	RegisterUser(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	ListChatRooms(ctx context.Context) ([]models.ChatRoom, error)
	CreateChatRoom(ctx context.Context, name string) (models.ChatRoom, error)
	GetMessages(ctx context.Context, roomID int64) ([]models.Message, error)
	SearchMessages(ctx context.Context, roomID int64, query string) ([]models.Message, error)
	Ping(ctx context.Context) error

	SendFriendRequest(ctx context.Context, requesterID int64, targetUsername string) (models.FriendRequest, error)
	RespondFriendRequest(ctx context.Context, requestID int64, accept bool) (models.FriendRequest, error)
	ListIncomingRequests(ctx context.Context, userID int64) ([]models.FriendRequest, error)
	ListFriends(ctx context.Context, userID int64) ([]models.Friend, error)
	RemoveFriend(ctx context.Context, userID, friendID int64) error

	CreateGroupChat(ctx context.Context, ownerID int64, name, description string, memberIDs []int64) (models.ChatRoom, error)
	AddMember(ctx context.Context, roomID, requesterID, userID int64) error
	RemoveMember(ctx context.Context, roomID, requesterID, userID int64) error
	PromoteMember(ctx context.Context, roomID, requesterID, userID int64) error
	ListMembers(ctx context.Context, roomID int64) ([]models.ChatRoomMember, error)
	ListUserChatRooms(ctx context.Context, userID int64) ([]models.ChatRoom, error)
	GetPrivateChatRoom(ctx context.Context, userID1, userID2 int64) (models.ChatRoom, error)
}

// Dispatcher runs message mutations through the backend and, on
// success, fans the resulting event out over WebSocket.
type Dispatcher interface {
	SendMessage(ctx context.Context, roomID, senderID int64, text string) (models.Message, error)
	EditMessage(ctx context.Context, messageID, senderID int64, text string) (models.Message, error)
	DeleteMessage(ctx context.Context, messageID, requesterID int64) (models.Message, error)
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	backend    Backend
	dispatcher Dispatcher
	hub        *websocket.Hub
	tokens     *auth.Manager
	validate   *validator.Validate
}

// NewHandler builds the handler set.
func NewHandler(backend Backend, dispatcher Dispatcher, hub *websocket.Hub, tokens *auth.Manager) *Handler {
	return &Handler{
		backend:    backend,
		dispatcher: dispatcher,
		hub:        hub,
		tokens:     tokens,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}
