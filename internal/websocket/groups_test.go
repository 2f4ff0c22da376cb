// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package websocket

import (
	"fmt"
	"sort"
	"sync"
	"testing"
)

func TestGroupTable_JoinLeave(t *testing.T) {
	g := NewGroupTable()

	g.Join(1, "a")
	g.Join(1, "b")
	g.Join(2, "a")

	members := g.MembersOf(1)
	sort.Strings(members)
	if len(members) != 2 || members[0] != "a" || members[1] != "b" {
		t.Errorf("MembersOf(1) = %v", members)
	}

	g.Leave(1, "a")
	if members := g.MembersOf(1); len(members) != 1 || members[0] != "b" {
		t.Errorf("after leave, MembersOf(1) = %v", members)
	}
}

func TestGroupTable_JoinIdempotent(t *testing.T) {
	g := NewGroupTable()
	g.Join(1, "a")
	g.Join(1, "a")
	if n := len(g.MembersOf(1)); n != 1 {
		t.Errorf("double join produced %d members", n)
	}
}

func TestGroupTable_UnknownIDsAreNoOps(t *testing.T) {
	g := NewGroupTable()
	g.Leave(99, "ghost")
	g.RemoveEverywhere("ghost")
	if got := g.MembersOf(99); got != nil {
		t.Errorf("MembersOf(unknown) = %v, want nil", got)
	}
}

func TestGroupTable_EmptyGroupRetained(t *testing.T) {
	g := NewGroupTable()
	g.Join(5, "a")
	g.Leave(5, "a")

	if g.RoomCount() != 1 {
		t.Error("emptied room should be retained")
	}
	if n := len(g.MembersOf(5)); n != 0 {
		t.Errorf("empty room has %d members", n)
	}

	// Re-joining the retained room works normally.
	g.Join(5, "b")
	if n := len(g.MembersOf(5)); n != 1 {
		t.Errorf("rejoin failed, %d members", n)
	}
}

func TestGroupTable_RemoveEverywhere(t *testing.T) {
	g := NewGroupTable()
	for room := int64(1); room <= 5; room++ {
		g.Join(room, "a")
		g.Join(room, "b")
	}

	g.RemoveEverywhere("a")

	for room := int64(1); room <= 5; room++ {
		for _, m := range g.MembersOf(room) {
			if m == "a" {
				t.Fatalf("conn a still in room %d", room)
			}
		}
	}
	if g.MembershipCount() != 5 {
		t.Errorf("MembershipCount = %d, want 5", g.MembershipCount())
	}
}

func TestGroupTable_SnapshotIsolation(t *testing.T) {
	g := NewGroupTable()
	g.Join(1, "a")
	g.Join(1, "b")

	snapshot := g.MembersOf(1)
	g.Leave(1, "a")
	g.Leave(1, "b")

	if len(snapshot) != 2 {
		t.Errorf("snapshot mutated by later leaves: %v", snapshot)
	}
}

func TestGroupTable_ConcurrentChurn(t *testing.T) {
	g := NewGroupTable()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("conn-%d", n)
			for room := int64(1); room <= 20; room++ {
				g.Join(room, id)
			}
			for room := int64(1); room <= 20; room++ {
				_ = g.MembersOf(room)
			}
			g.RemoveEverywhere(id)
		}(i)
	}
	wg.Wait()

	if g.MembershipCount() != 0 {
		t.Errorf("MembershipCount = %d after full churn", g.MembershipCount())
	}
}
