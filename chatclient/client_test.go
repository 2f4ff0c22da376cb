// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package chatclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	gorilla "github.com/gorilla/websocket"
)

// pushServer is a minimal stand-in for the gateway's push endpoint: it
// records inbound frames and lets tests push events or kill the
// connection to provoke a reconnect.
type pushServer struct {
	t        *testing.T
	server   *httptest.Server
	upgrader gorilla.Upgrader

	mu       sync.Mutex
	conns    []*gorilla.Conn
	received []receivedFrame
	tokens   []string
}

type receivedFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func newPushServer(t *testing.T) *pushServer {
	t.Helper()
	s := &pushServer{t: t}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(func() {
		s.killAll()
		s.server.Close()
	})
	return s
}

func (s *pushServer) handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("access_token")
	if token == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.conns = append(s.conns, conn)
	s.tokens = append(s.tokens, token)
	s.mu.Unlock()

	for {
		var f receivedFrame
		if err := conn.ReadJSON(&f); err != nil {
			return
		}
		s.mu.Lock()
		s.received = append(s.received, f)
		s.mu.Unlock()
	}
}

func (s *pushServer) url() string {
	return strings.Replace(s.server.URL, "http://", "ws://", 1)
}

func (s *pushServer) connCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *pushServer) frames() []receivedFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]receivedFrame, len(s.received))
	copy(out, s.received)
	return out
}

// push sends an event on the most recent connection.
func (s *pushServer) push(ev Event) {
	s.mu.Lock()
	conn := s.conns[len(s.conns)-1]
	s.mu.Unlock()
	if err := conn.WriteJSON(ev); err != nil {
		s.t.Logf("push failed: %v", err)
	}
}

// killAll drops every open connection, forcing clients to reconnect.
func (s *pushServer) killAll() {
	s.mu.Lock()
	conns := s.conns
	s.conns = nil
	s.mu.Unlock()
	for _, c := range conns {
		c.Close()
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached within deadline")
}

func TestClient_ConnectAndSend(t *testing.T) {
	server := newPushServer(t)
	c := New(Config{URL: server.url(), Token: "tok"})
	c.Start(context.Background())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Send(ctx, 7, "hello"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	waitFor(t, func() bool { return len(server.frames()) == 1 })
	f := server.frames()[0]
	if f.Type != "SendMessage" {
		t.Errorf("frame type = %q", f.Type)
	}
	var p sendPayload
	if err := json.Unmarshal(f.Data, &p); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if p.ChatRoomID != 7 || p.Text != "hello" {
		t.Errorf("payload = %+v", p)
	}
}

func TestClient_SendBeforeStartFails(t *testing.T) {
	c := New(Config{URL: "ws://127.0.0.1:1", Token: "tok"})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := c.Send(ctx, 7, "hello"); err == nil {
		t.Fatal("Send before Start should fail")
	}
}

func TestClient_JoinWaitsForConnection(t *testing.T) {
	server := newPushServer(t)
	c := New(Config{URL: server.url(), Token: "tok"})

	// Issue the join first, then start; the call must block until the
	// connection opens rather than fail.
	errCh := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		errCh <- c.Join(ctx, 7)
	}()

	time.Sleep(20 * time.Millisecond)
	c.Start(context.Background())
	defer c.Close()

	if err := <-errCh; err != nil {
		t.Fatalf("Join: %v", err)
	}
	waitFor(t, func() bool { return len(server.frames()) >= 1 })
}

func TestClient_ReconnectsAndRejoins(t *testing.T) {
	server := newPushServer(t)

	var mu sync.Mutex
	var states []State
	c := New(Config{
		URL:   server.url(),
		Token: "tok",
		OnStateChange: func(s State) {
			mu.Lock()
			states = append(states, s)
			mu.Unlock()
		},
	})
	c.Start(context.Background())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Join(ctx, 7); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := c.Join(ctx, 8); err != nil {
		t.Fatalf("Join: %v", err)
	}
	waitFor(t, func() bool { return len(server.frames()) >= 2 })

	server.killAll()
	waitFor(t, func() bool { return server.connCount() >= 1 })

	// Both rooms are rejoined on the new connection.
	waitFor(t, func() bool {
		joins := map[int64]int{}
		for _, f := range server.frames() {
			if f.Type != "JoinChat" {
				continue
			}
			var p roomPayload
			if json.Unmarshal(f.Data, &p) == nil {
				joins[p.ChatRoomID]++
			}
		}
		return joins[7] >= 2 && joins[8] >= 2
	})

	// The machine walked Disconnected -> Connecting -> Open again.
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		opens := 0
		for _, s := range states {
			if s == StateOpen {
				opens++
			}
		}
		return opens >= 2
	})
}

func TestClient_LeftRoomNotRejoined(t *testing.T) {
	server := newPushServer(t)
	c := New(Config{URL: server.url(), Token: "tok"})
	c.Start(context.Background())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Join(ctx, 7); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := c.Leave(ctx, 7); err != nil {
		t.Fatalf("Leave: %v", err)
	}
	waitFor(t, func() bool { return len(server.frames()) >= 2 })

	server.killAll()
	waitFor(t, func() bool { return server.connCount() >= 1 })

	// Give a potential stray rejoin time to arrive, then check none did.
	time.Sleep(100 * time.Millisecond)
	for _, f := range server.frames()[2:] {
		if f.Type == "JoinChat" {
			t.Errorf("left room was rejoined: %+v", f)
		}
	}
}

func TestClient_DeliversEvents(t *testing.T) {
	server := newPushServer(t)

	events := make(chan Event, 8)
	c := New(Config{
		URL:     server.url(),
		Token:   "tok",
		OnEvent: func(ev Event) { events <- ev },
	})
	c.Start(context.Background())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Join(ctx, 7); err != nil {
		t.Fatalf("Join: %v", err)
	}

	payload, _ := json.Marshal(map[string]any{"id": 42, "chat_room_id": 7, "text": "hi"})
	server.push(Event{Type: "ReceiveMessage", Data: payload})

	select {
	case ev := <-events:
		if ev.Type != "ReceiveMessage" {
			t.Errorf("event type = %q", ev.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestClient_CloseStopsReconnecting(t *testing.T) {
	server := newPushServer(t)
	c := New(Config{URL: server.url(), Token: "tok"})
	c.Start(context.Background())

	waitFor(t, func() bool { return c.State() == StateOpen })
	c.Close()

	if c.State() != StateDisconnected {
		t.Errorf("state after Close = %v", c.State())
	}
	before := server.connCount()
	time.Sleep(100 * time.Millisecond)
	if server.connCount() != before {
		t.Error("client reconnected after Close")
	}
}

func TestClient_InvalidArguments(t *testing.T) {
	c := New(Config{URL: "ws://127.0.0.1:1", Token: "tok"})
	ctx := context.Background()
	if err := c.Join(ctx, 0); err == nil {
		t.Error("Join(0) should fail")
	}
	if err := c.Send(ctx, 7, ""); err == nil {
		t.Error("Send with empty text should fail")
	}
}
