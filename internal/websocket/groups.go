// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package websocket

import (
	"sync"
)

// GroupTable maps chat room IDs to the connection IDs subscribed to
// them. Rooms are created lazily on first join and retained when they
// empty out; the table says nothing about whether a room exists in the
// backend.
type GroupTable struct {
	mu     sync.RWMutex
	groups map[int64]map[string]struct{}
}

// NewGroupTable creates an empty table.
func NewGroupTable() *GroupTable {
	return &GroupTable{groups: make(map[int64]map[string]struct{})}
}

// Join subscribes connID to roomID. Joining twice is a no-op.
func (g *GroupTable) Join(roomID int64, connID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	members, ok := g.groups[roomID]
	if !ok {
		members = make(map[string]struct{})
		g.groups[roomID] = members
	}
	members[connID] = struct{}{}
}

// Leave unsubscribes connID from roomID. Unknown rooms and
// non-members are no-ops. The room entry survives even when empty.
func (g *GroupTable) Leave(roomID int64, connID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if members, ok := g.groups[roomID]; ok {
		delete(members, connID)
	}
}

// MembersOf returns a snapshot of roomID's members. Broadcast iterates
// the snapshot, so joins and leaves during a fan-out affect only later
// events.
func (g *GroupTable) MembersOf(roomID int64) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	members, ok := g.groups[roomID]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	return out
}

// RemoveEverywhere drops connID from every room. Called on disconnect
// so a dead connection never lingers in any membership set.
func (g *GroupTable) RemoveEverywhere(connID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, members := range g.groups {
		delete(members, connID)
	}
}

// MembershipCount returns the total number of (connection, room)
// pairs, for metrics.
func (g *GroupTable) MembershipCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, members := range g.groups {
		n += len(members)
	}
	return n
}

// RoomCount returns the number of known rooms, empty ones included.
func (g *GroupTable) RoomCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.groups)
}
