// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package fanout couples backend message RPCs with WebSocket delivery.
// The backend verdict always comes first: no event is pushed to anyone
// until the RPC has succeeded, so clients never see a message the
// system of record rejected.
package fanout

import (
	"context"

	"github.com/DanWeld/ChatSystemSEP3/internal/logging"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
	"github.com/DanWeld/ChatSystemSEP3/internal/websocket"
)

// ChatBackend is the slice of the backend client the dispatcher needs.
type ChatBackend interface {
	SendMessage(ctx context.Context, roomID, senderID int64, text string) (models.Message, error)
	EditMessage(ctx context.Context, messageID, senderID int64, text string) (models.Message, error)
	DeleteMessage(ctx context.Context, messageID, requesterID int64) (models.Message, error)
}

// Broadcaster fans an event out to a room's connected members.
type Broadcaster interface {
	Broadcast(roomID int64, ev websocket.Event) int
}

// Dispatcher runs the RPC-then-broadcast sequence for every mutation
// that other room members need to hear about. It serves both the REST
// handlers and the hub's inbound SendMessage command.
type Dispatcher struct {
	backend     ChatBackend
	broadcaster Broadcaster
}

// New builds a dispatcher over the given backend and broadcaster.
func New(backend ChatBackend, broadcaster Broadcaster) *Dispatcher {
	return &Dispatcher{backend: backend, broadcaster: broadcaster}
}

// SendMessage persists the message and pushes a ReceiveMessage event to
// the room. The sender hears about their own message the same way every
// other member does.
func (d *Dispatcher) SendMessage(ctx context.Context, roomID, senderID int64, text string) (models.Message, error) {
	msg, err := d.backend.SendMessage(ctx, roomID, senderID, text)
	if err != nil {
		return models.Message{}, err
	}
	delivered := d.broadcaster.Broadcast(msg.ChatRoomID, websocket.Event{
		Type: websocket.EventReceiveMessage,
		Data: msg,
	})
	logging.Debug().
		Int64("message_id", msg.ID).
		Int64("chat_room_id", msg.ChatRoomID).
		Int("delivered", delivered).
		Msg("message dispatched")
	return msg, nil
}

// EditMessage applies the edit and pushes a MessageEdited event with
// the updated envelope.
func (d *Dispatcher) EditMessage(ctx context.Context, messageID, senderID int64, text string) (models.Message, error) {
	msg, err := d.backend.EditMessage(ctx, messageID, senderID, text)
	if err != nil {
		return models.Message{}, err
	}
	d.broadcaster.Broadcast(msg.ChatRoomID, websocket.Event{
		Type: websocket.EventMessageEdited,
		Data: msg,
	})
	return msg, nil
}

// DeleteMessage soft-deletes the message and pushes a MessageDeleted
// event carrying the tombstoned envelope.
func (d *Dispatcher) DeleteMessage(ctx context.Context, messageID, requesterID int64) (models.Message, error) {
	msg, err := d.backend.DeleteMessage(ctx, messageID, requesterID)
	if err != nil {
		return models.Message{}, err
	}
	d.broadcaster.Broadcast(msg.ChatRoomID, websocket.Event{
		Type: websocket.EventMessageDeleted,
		Data: msg,
	})
	return msg, nil
}
