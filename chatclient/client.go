// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package chatclient is the importable client for the gateway's push
// transport. It maintains a single WebSocket connection through a
// reconnecting state machine, rejoins previously joined rooms after
// every reconnect, and delivers server events through a callback.
package chatclient

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"
	gorilla "github.com/gorilla/websocket"

	"github.com/DanWeld/ChatSystemSEP3/internal/errs"
)

// State is the connection lifecycle state.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "disconnected"
	}
}

// Event is a server-to-client frame. Data stays raw so callers decode
// only the event kinds they care about.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Config configures the client.
type Config struct {
	// URL is the push endpoint, e.g. ws://host:8080/api/v1/ws.
	URL string

	// Token is the access token, sent via the access_token query
	// parameter per the push endpoint's transport rules.
	Token string

	// OnEvent receives every server event, called from the read loop.
	// Slow handlers delay subsequent events on this connection.
	OnEvent func(Event)

	// OnStateChange observes lifecycle transitions. Optional.
	OnStateChange func(State)

	// HandshakeTimeout bounds a single dial attempt. Defaults to 10s.
	HandshakeTimeout time.Duration

	// MaxReconnectInterval caps the backoff between attempts.
	// Defaults to 30s.
	MaxReconnectInterval time.Duration
}

// Client is a reconnecting push-transport connection. Safe for
// concurrent use.
type Client struct {
	cfg Config

	mu      sync.Mutex
	state   State
	conn    *gorilla.Conn
	joined  map[int64]struct{}
	writeMu sync.Mutex

	// openCh is closed when the connection reaches Open and replaced
	// on every disconnect; waiters block on the current one.
	openCh chan struct{}

	runCtx  context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
}

// New builds a client. Call Start to begin connecting.
func New(cfg Config) *Client {
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = 10 * time.Second
	}
	if cfg.MaxReconnectInterval <= 0 {
		cfg.MaxReconnectInterval = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		state:  StateDisconnected,
		joined: make(map[int64]struct{}),
		openCh: make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start launches the connection loop. The loop reconnects with
// exponential backoff until ctx is canceled or Close is called.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	if c.runCtx != nil {
		c.mu.Unlock()
		return
	}
	c.runCtx, c.cancel = context.WithCancel(ctx)
	c.stopped = make(chan struct{})
	c.mu.Unlock()

	go c.run()
}

// Close stops the loop and closes the connection. The client cannot be
// restarted afterward.
func (c *Client) Close() {
	c.mu.Lock()
	cancel := c.cancel
	stopped := c.stopped
	c.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

func (c *Client) run() {
	defer close(c.stopped)
	for {
		if c.runCtx.Err() != nil {
			c.setState(StateDisconnected)
			return
		}

		c.setState(StateConnecting)
		conn, err := c.dial()
		if err != nil {
			c.setState(StateDisconnected)
			return
		}

		c.mu.Lock()
		c.conn = conn
		c.state = StateOpen
		open := c.openCh
		c.mu.Unlock()
		c.notify(StateOpen)
		close(open)

		// Cancellation must release the read loop, which otherwise
		// blocks until the server closes the connection.
		watchDone := make(chan struct{})
		go func() {
			select {
			case <-c.runCtx.Done():
				//nolint:errcheck // connection is being torn down
				_ = conn.Close()
			case <-watchDone:
			}
		}()

		c.rejoin()
		c.readLoop(conn)
		close(watchDone)

		c.mu.Lock()
		c.conn = nil
		c.state = StateDisconnected
		c.openCh = make(chan struct{})
		c.mu.Unlock()
		c.notify(StateDisconnected)
	}
}

// dial attempts the handshake with exponential backoff until it
// succeeds or the run context ends.
func (c *Client) dial() (*gorilla.Conn, error) {
	b := backoff.NewExponentialBackOff()
	b.MaxInterval = c.cfg.MaxReconnectInterval
	b.MaxElapsedTime = 0

	var conn *gorilla.Conn
	op := func() error {
		dialer := gorilla.Dialer{HandshakeTimeout: c.cfg.HandshakeTimeout}
		url := c.cfg.URL + "?access_token=" + c.cfg.Token
		ws, resp, err := dialer.DialContext(c.runCtx, url, nil)
		if resp != nil {
			//nolint:errcheck // handshake response body is empty
			_ = resp.Body.Close()
		}
		if err != nil {
			return err
		}
		conn = ws
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(b, c.runCtx)); err != nil {
		return nil, err
	}
	return conn, nil
}

// rejoin replays JoinChat for every room joined before the disconnect.
func (c *Client) rejoin() {
	c.mu.Lock()
	rooms := make([]int64, 0, len(c.joined))
	for id := range c.joined {
		rooms = append(rooms, id)
	}
	c.mu.Unlock()

	for _, id := range rooms {
		//nolint:errcheck // a failed write surfaces via the read loop
		_ = c.write("JoinChat", roomPayload{ChatRoomID: id})
	}
}

func (c *Client) readLoop(conn *gorilla.Conn) {
	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			//nolint:errcheck // connection is already broken
			_ = conn.Close()
			return
		}
		if c.cfg.OnEvent != nil {
			c.cfg.OnEvent(ev)
		}
	}
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	changed := c.state != s
	c.state = s
	c.mu.Unlock()
	if changed {
		c.notify(s)
	}
}

func (c *Client) notify(s State) {
	if c.cfg.OnStateChange != nil {
		c.cfg.OnStateChange(s)
	}
}

// waitOpen blocks until the connection is open or ctx ends.
func (c *Client) waitOpen(ctx context.Context) error {
	for {
		c.mu.Lock()
		if c.state == StateOpen {
			c.mu.Unlock()
			return nil
		}
		open := c.openCh
		run := c.runCtx
		c.mu.Unlock()

		// Before Start the run context does not exist yet; the wait
		// still resolves once Start connects, bounded by ctx.
		if run == nil {
			select {
			case <-ctx.Done():
				return errs.Wrap(errs.CodeUnavailable, "connection not open", ctx.Err())
			case <-open:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return errs.Wrap(errs.CodeUnavailable, "connection not open", ctx.Err())
		case <-run.Done():
			return errs.New(errs.CodeUnavailable, "client closed")
		case <-open:
		}
	}
}

type roomPayload struct {
	ChatRoomID int64 `json:"chat_room_id"`
}

type sendPayload struct {
	ChatRoomID int64  `json:"chat_room_id"`
	Text       string `json:"text"`
}

type frame struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (c *Client) write(kind string, data any) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return errs.New(errs.CodeUnavailable, "connection not open")
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteJSON(frame{Type: kind, Data: data}); err != nil {
		return errs.Wrap(errs.CodeUnavailable, "write failed", err)
	}
	return nil
}

// Join subscribes to a room, waiting for the connection to open first.
// The room is remembered and rejoined after every reconnect.
func (c *Client) Join(ctx context.Context, roomID int64) error {
	if roomID <= 0 {
		return errs.New(errs.CodeInvalidArgument, "invalid chat_room_id")
	}
	c.mu.Lock()
	c.joined[roomID] = struct{}{}
	c.mu.Unlock()

	if err := c.waitOpen(ctx); err != nil {
		return err
	}
	return c.write("JoinChat", roomPayload{ChatRoomID: roomID})
}

// Leave unsubscribes from a room and forgets it for future reconnects.
func (c *Client) Leave(ctx context.Context, roomID int64) error {
	c.mu.Lock()
	delete(c.joined, roomID)
	c.mu.Unlock()

	if err := c.waitOpen(ctx); err != nil {
		return err
	}
	return c.write("LeaveChat", roomPayload{ChatRoomID: roomID})
}

// Send posts a message to a room, waiting for the connection to open
// first. Delivery confirmation arrives as a ReceiveMessage event, like
// for every other room member.
func (c *Client) Send(ctx context.Context, roomID int64, text string) error {
	if roomID <= 0 || text == "" {
		return errs.New(errs.CodeInvalidArgument, "chat_room_id and text are required")
	}
	if err := c.waitOpen(ctx); err != nil {
		return err
	}
	return c.write("SendMessage", sendPayload{ChatRoomID: roomID, Text: text})
}
