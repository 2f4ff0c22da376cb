// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package websocket

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/DanWeld/ChatSystemSEP3/internal/errs"
	"github.com/DanWeld/ChatSystemSEP3/internal/logging"
)

// Client is one authenticated WebSocket connection. The read pump
// parses commands; the write pump drains the send queue. The hub is
// the only closer of done, which releases both pumps.
type Client struct {
	id       string
	userID   int64
	username string

	hub  *Hub
	conn *websocket.Conn

	// send is never closed; done signals shutdown instead, so a
	// concurrent Enqueue can never hit a closed channel.
	send chan Event
	done chan struct{}
}

// NewClient wraps an upgraded connection for the given user.
func NewClient(hub *Hub, conn *websocket.Conn, userID int64, username string) *Client {
	return &Client{
		id:       uuid.New().String(),
		userID:   userID,
		username: username,
		hub:      hub,
		conn:     conn,
		send:     make(chan Event, hub.cfg.SendBuffer),
		done:     make(chan struct{}),
	}
}

// ID returns the per-process connection ID.
func (c *Client) ID() string { return c.id }

// UserID returns the authenticated user behind this connection.
func (c *Client) UserID() int64 { return c.userID }

// Enqueue queues ev for delivery and reports success. It never
// blocks: a full queue or a closed connection drops the event.
func (c *Client) Enqueue(ev Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case <-c.done:
		return false
	case c.send <- ev:
		return true
	default:
		return false
	}
}

// Start launches the pumps. Call after registering with the hub.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// readPump parses inbound frames until the connection errors, then
// hands the client to the hub for teardown.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		//nolint:errcheck // best-effort close
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.hub.cfg.MaxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongWait)); err != nil {
		logging.Error().Err(err).Str("conn_id", c.id).Msg("set read deadline failed")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongWait))
	})

	for {
		var frame Frame
		if err := c.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logging.Warn().Err(err).Str("conn_id", c.id).Msg("unexpected websocket close")
			}
			return
		}
		c.handleFrame(frame)
	}
}

// handleFrame applies one inbound command. Failures are reported to
// this connection only; nothing is broadcast.
func (c *Client) handleFrame(frame Frame) {
	switch frame.Type {
	case CommandPing:
		c.Enqueue(Event{Type: EventPong})

	case CommandJoinChat:
		var p RoomPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil || p.ChatRoomID <= 0 {
			c.sendError(errs.CodeInvalidArgument, "JoinChat requires a chat_room_id")
			return
		}
		c.hub.Join(p.ChatRoomID, c.id)

	case CommandLeaveChat:
		var p RoomPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil || p.ChatRoomID <= 0 {
			c.sendError(errs.CodeInvalidArgument, "LeaveChat requires a chat_room_id")
			return
		}
		c.hub.Leave(p.ChatRoomID, c.id)

	case CommandSendMessage:
		var p SendPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil || p.ChatRoomID <= 0 || p.Text == "" {
			c.sendError(errs.CodeInvalidArgument, "SendMessage requires chat_room_id and text")
			return
		}
		if len(p.Text) > 2000 {
			c.sendError(errs.CodeInvalidArgument, "text exceeds 2000 characters")
			return
		}
		// The dispatcher runs the backend RPC and, on success, the
		// broadcast. The sender receives the message like any other
		// room member rather than through a direct reply.
		if _, err := c.hub.sender.SendMessage(context.Background(), p.ChatRoomID, c.userID, p.Text); err != nil {
			c.sendError(errs.CodeOf(err), errs.MessageOf(err))
		}

	default:
		c.sendError(errs.CodeInvalidArgument, "unknown command type")
	}
}

func (c *Client) sendError(code errs.Code, message string) {
	c.Enqueue(Event{
		Type: EventError,
		Data: ErrorPayload{Code: string(code), Message: message},
	})
}

// writePump drains the send queue and keeps the connection alive with
// pings at 9/10 of the pong deadline.
func (c *Client) writePump() {
	pingPeriod := c.hub.cfg.PongWait * 9 / 10
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		//nolint:errcheck // best-effort close
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteWait)); err == nil {
				//nolint:errcheck // connection is going away regardless
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			}
			return

		case ev := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteWait)); err != nil {
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				logging.Debug().Err(err).Str("conn_id", c.id).Msg("write failed")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
