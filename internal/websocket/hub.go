// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package websocket

import (
	"context"

	"github.com/DanWeld/ChatSystemSEP3/internal/config"
	"github.com/DanWeld/ChatSystemSEP3/internal/logging"
	"github.com/DanWeld/ChatSystemSEP3/internal/metrics"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
)

// MessageSender handles SendMessage commands arriving over the push
// transport. Implemented by the fan-out dispatcher; the RPC and the
// resulting broadcast both happen inside this call.
type MessageSender interface {
	SendMessage(ctx context.Context, roomID, senderID int64, text string) (models.Message, error)
}

// Hub owns connection lifecycle and fan-out. Lifecycle events flow
// through the Register/Unregister channels and are applied by the run
// loop; Broadcast is called synchronously by the dispatcher after the
// backend RPC succeeds.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client

	registry *Registry
	groups   *GroupTable
	cfg      config.WebSocketConfig

	// sender is set once at startup, before any connection is
	// accepted, via SetSender.
	sender MessageSender
}

// NewHub creates a hub over the given registry and group table.
func NewHub(cfg config.WebSocketConfig, registry *Registry, groups *GroupTable) *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		registry:   registry,
		groups:     groups,
		cfg:        cfg,
	}
}

// SetSender wires the dispatcher in. The hub and dispatcher reference
// each other, so the hub is constructed first and completed here.
func (h *Hub) SetSender(s MessageSender) {
	h.sender = s
}

// RunWithContext applies lifecycle events until ctx is canceled, then
// closes every connection and returns ctx.Err().
//
// Shutdown has priority over lifecycle events so a flood of connects
// cannot delay termination.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()

		case client := <-h.Register:
			h.register(client)

		case client := <-h.Unregister:
			h.unregister(client)
		}
	}
}

func (h *Hub) register(c *Client) {
	h.registry.Register(c)
	metrics.WSConnectionsActive.Set(float64(h.registry.Count()))
	metrics.WSConnectionsTotal.Inc()
	logging.Info().
		Str("conn_id", c.id).
		Int64("user_id", c.userID).
		Int("total_connections", h.registry.Count()).
		Msg("websocket client connected")
}

// unregister removes the connection from the registry and from every
// group, then releases the write pump. Duplicate unregisters are
// no-ops; the registry decides who closes the done channel.
func (h *Hub) unregister(c *Client) {
	if !h.registry.Unregister(c.id) {
		return
	}
	h.groups.RemoveEverywhere(c.id)
	close(c.done)
	metrics.WSConnectionsActive.Set(float64(h.registry.Count()))
	metrics.WSGroupMembers.Set(float64(h.groups.MembershipCount()))
	logging.Info().
		Str("conn_id", c.id).
		Int64("user_id", c.userID).
		Int("total_connections", h.registry.Count()).
		Msg("websocket client disconnected")
}

func (h *Hub) shutdown(ctx context.Context) {
	clients := h.registry.Snapshot()
	for _, c := range clients {
		if h.registry.Unregister(c.id) {
			h.groups.RemoveEverywhere(c.id)
			close(c.done)
		}
	}
	metrics.WSConnectionsActive.Set(0)
	metrics.WSGroupMembers.Set(0)
	logging.Info().
		Str("component", "websocket-hub").
		Int("clients_closed", len(clients)).
		AnErr("cause", ctx.Err()).
		Msg("websocket hub stopped")
}

// Join subscribes a connection to a room.
func (h *Hub) Join(roomID int64, connID string) {
	h.groups.Join(roomID, connID)
	metrics.WSGroupMembers.Set(float64(h.groups.MembershipCount()))
}

// Leave unsubscribes a connection from a room.
func (h *Hub) Leave(roomID int64, connID string) {
	h.groups.Leave(roomID, connID)
	metrics.WSGroupMembers.Set(float64(h.groups.MembershipCount()))
}

// Broadcast fans ev out to the room's current members and returns the
// number of connections it was queued for. Membership is snapshotted
// up front; members whose queues are full or whose connections died
// mid-fan-out are skipped without stalling delivery to the rest.
func (h *Hub) Broadcast(roomID int64, ev Event) int {
	members := h.groups.MembersOf(roomID)
	delivered := 0
	for _, connID := range members {
		c, ok := h.registry.Get(connID)
		if !ok {
			continue
		}
		if c.Enqueue(ev) {
			delivered++
			metrics.WSEventsDelivered.WithLabelValues(ev.Type).Inc()
		} else {
			metrics.WSEventsDropped.WithLabelValues(ev.Type).Inc()
		}
	}
	logging.Debug().
		Int64("chat_room_id", roomID).
		Str("event", ev.Type).
		Int("members", len(members)).
		Int("delivered", delivered).
		Msg("broadcast")
	return delivered
}
