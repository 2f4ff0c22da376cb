// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package websocket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DanWeld/ChatSystemSEP3/internal/config"
)

func testWSConfig() config.WebSocketConfig {
	return config.WebSocketConfig{
		WriteWait:      time.Second,
		PongWait:       10 * time.Second,
		MaxMessageSize: 8192,
		SendBuffer:     4,
	}
}

// startHub runs the hub loop and returns it with its registry and
// group table. The loop stops at test cleanup.
func startHub(t *testing.T) (*Hub, *Registry, *GroupTable) {
	t.Helper()
	registry := NewRegistry()
	groups := NewGroupTable()
	hub := NewHub(testWSConfig(), registry, groups)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.RunWithContext(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub, registry, groups
}

// registerAndWait pushes a client through the Register channel and
// blocks until the run loop has applied it.
func registerAndWait(t *testing.T, hub *Hub, registry *Registry, c *Client) {
	t.Helper()
	hub.Register <- c
	waitFor(t, func() bool { return registry.IsAlive(c.id) })
}

func unregisterAndWait(t *testing.T, hub *Hub, registry *Registry, c *Client) {
	t.Helper()
	hub.Unregister <- c
	waitFor(t, func() bool { return !registry.IsAlive(c.id) })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached within deadline")
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub, registry, groups := startHub(t)
	c := NewClient(hub, nil, 1, "alice")

	registerAndWait(t, hub, registry, c)
	if registry.Count() != 1 {
		t.Errorf("Count = %d", registry.Count())
	}

	hub.Join(7, c.id)
	hub.Join(8, c.id)

	unregisterAndWait(t, hub, registry, c)

	if groups.MembershipCount() != 0 {
		t.Error("unregister should remove the connection from every group")
	}
	select {
	case <-c.done:
	default:
		t.Error("done should be closed after unregister")
	}
}

func TestHub_UnregisterIdempotent(t *testing.T) {
	hub, registry, _ := startHub(t)
	c := NewClient(hub, nil, 1, "alice")

	registerAndWait(t, hub, registry, c)
	unregisterAndWait(t, hub, registry, c)

	// A second unregister (reader and writer both report exit) must
	// not close done twice.
	hub.Unregister <- c
	waitFor(t, func() bool { return registry.Count() == 0 })
}

func TestHub_BroadcastReachesMembersOnly(t *testing.T) {
	hub, registry, _ := startHub(t)
	member := NewClient(hub, nil, 1, "alice")
	outsider := NewClient(hub, nil, 2, "bob")
	registerAndWait(t, hub, registry, member)
	registerAndWait(t, hub, registry, outsider)

	hub.Join(7, member.id)

	delivered := hub.Broadcast(7, Event{Type: EventReceiveMessage})
	if delivered != 1 {
		t.Errorf("delivered = %d, want 1", delivered)
	}

	select {
	case ev := <-member.send:
		if ev.Type != EventReceiveMessage {
			t.Errorf("member got %q", ev.Type)
		}
	default:
		t.Error("member queue empty")
	}
	select {
	case ev := <-outsider.send:
		t.Errorf("outsider got %q", ev.Type)
	default:
	}
}

func TestHub_BroadcastToUnknownRoom(t *testing.T) {
	hub, _, _ := startHub(t)
	if delivered := hub.Broadcast(404, Event{Type: EventReceiveMessage}); delivered != 0 {
		t.Errorf("delivered = %d, want 0", delivered)
	}
}

func TestHub_DeadMemberSkipped(t *testing.T) {
	hub, registry, groups := startHub(t)
	alive := NewClient(hub, nil, 1, "alice")
	dead := NewClient(hub, nil, 2, "bob")
	registerAndWait(t, hub, registry, alive)
	registerAndWait(t, hub, registry, dead)

	hub.Join(7, alive.id)
	hub.Join(7, dead.id)
	unregisterAndWait(t, hub, registry, dead)

	// The dead member is already out of the table; even a stale
	// membership would be skipped because the registry lookup fails.
	if delivered := hub.Broadcast(7, Event{Type: EventReceiveMessage}); delivered != 1 {
		t.Errorf("delivered = %d, want 1", delivered)
	}
	_ = groups
}

func TestHub_SlowRecipientDropsNotBlocks(t *testing.T) {
	hub, registry, _ := startHub(t)
	slow := NewClient(hub, nil, 1, "alice")
	registerAndWait(t, hub, registry, slow)
	hub.Join(7, slow.id)

	// Fill the queue; nobody is draining it.
	for i := 0; i < testWSConfig().SendBuffer; i++ {
		if hub.Broadcast(7, Event{Type: EventReceiveMessage}) != 1 {
			t.Fatalf("broadcast %d should enqueue", i)
		}
	}

	finished := make(chan int, 1)
	go func() {
		finished <- hub.Broadcast(7, Event{Type: EventReceiveMessage})
	}()
	select {
	case delivered := <-finished:
		if delivered != 0 {
			t.Errorf("overflow broadcast delivered = %d, want 0", delivered)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full queue")
	}
}

func TestHub_EnqueueAfterDoneIsSafe(t *testing.T) {
	hub, registry, _ := startHub(t)
	c := NewClient(hub, nil, 1, "alice")
	registerAndWait(t, hub, registry, c)
	hub.Join(7, c.id)
	unregisterAndWait(t, hub, registry, c)

	if c.Enqueue(Event{Type: EventReceiveMessage}) {
		t.Error("Enqueue after done should report failure")
	}
}

// Concurrent joins, leaves, broadcasts, and disconnects must leave the
// tables consistent: no connection remains in any group after its
// unregister completes.
func TestHub_ConcurrentChurn(t *testing.T) {
	hub, registry, groups := startHub(t)

	const clients = 8
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c := NewClient(hub, nil, int64(n), "user")
			hub.Register <- c
			for room := int64(1); room <= 10; room++ {
				hub.Join(room, c.id)
			}
			for j := 0; j < 20; j++ {
				hub.Broadcast(int64(j%10)+1, Event{Type: EventReceiveMessage})
				// Drain own queue so broadcasts keep landing.
				for {
					select {
					case <-c.send:
						continue
					default:
					}
					break
				}
			}
			hub.Unregister <- c
		}(i)
	}
	wg.Wait()

	waitFor(t, func() bool { return registry.Count() == 0 })
	waitFor(t, func() bool { return groups.MembershipCount() == 0 })
}

func TestRegistry_Basics(t *testing.T) {
	registry := NewRegistry()
	hub := NewHub(testWSConfig(), registry, NewGroupTable())
	c := NewClient(hub, nil, 1, "alice")

	if registry.IsAlive(c.id) {
		t.Error("unregistered connection reported alive")
	}
	registry.Register(c)
	if !registry.IsAlive(c.id) {
		t.Error("registered connection reported dead")
	}
	if got, ok := registry.Get(c.id); !ok || got != c {
		t.Error("Get returned wrong client")
	}
	if !registry.Unregister(c.id) {
		t.Error("first unregister should report true")
	}
	if registry.Unregister(c.id) {
		t.Error("second unregister should report false")
	}
}
