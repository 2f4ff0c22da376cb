// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package chatclient

import (
	"sync"
)

// Dedup suppresses replayed event envelopes. Rejoining rooms after a
// reconnect can replay recent events; tracking (message id, event kind)
// pairs makes the replays no-ops. A message can still pass once per
// kind, so an edit after a delivery is not suppressed.
type Dedup struct {
	mu   sync.Mutex
	seen map[dedupKey]struct{}
}

type dedupKey struct {
	id   int64
	kind string
}

// NewDedup creates an empty tracker.
func NewDedup() *Dedup {
	return &Dedup{seen: make(map[dedupKey]struct{})}
}

// Seen records the (id, kind) pair and reports whether it was already
// present.
func (d *Dedup) Seen(id int64, kind string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := dedupKey{id: id, kind: kind}
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// Forget drops every recorded pair for the given id.
func (d *Dedup) Forget(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key := range d.seen {
		if key.id == id {
			delete(d.seen, key)
		}
	}
}

// Len returns the number of tracked pairs.
func (d *Dedup) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
