// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package websocket implements the push transport: the connection
// registry, group membership table, hub fan-out, and per-connection
// read/write pumps.
package websocket

import (
	json "github.com/goccy/go-json"
)

// Server-to-client event types.
const (
	EventReceiveMessage = "ReceiveMessage"
	EventMessageEdited  = "MessageEdited"
	EventMessageDeleted = "MessageDeleted"
	EventError          = "error"
	EventPong           = "pong"
)

// Client-to-server command types.
const (
	CommandJoinChat    = "JoinChat"
	CommandLeaveChat   = "LeaveChat"
	CommandSendMessage = "SendMessage"
	CommandPing        = "ping"
)

// Event is an outbound frame.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Frame is an inbound frame; Data stays raw until the command type is
// known.
type Frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// RoomPayload accompanies JoinChat and LeaveChat.
type RoomPayload struct {
	ChatRoomID int64 `json:"chat_room_id"`
}

// SendPayload accompanies SendMessage.
type SendPayload struct {
	ChatRoomID int64  `json:"chat_room_id"`
	Text       string `json:"text"`
}

// ErrorPayload is sent only to the connection whose command failed.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
