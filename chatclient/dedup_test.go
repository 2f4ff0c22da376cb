// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package chatclient

import (
	"sync"
	"testing"
)

func TestDedup_FirstPassThenSuppressed(t *testing.T) {
	d := NewDedup()

	if d.Seen(42, "ReceiveMessage") {
		t.Error("first occurrence reported as seen")
	}
	if !d.Seen(42, "ReceiveMessage") {
		t.Error("replay not suppressed")
	}
}

func TestDedup_KindsTrackedSeparately(t *testing.T) {
	d := NewDedup()

	d.Seen(42, "ReceiveMessage")
	if d.Seen(42, "MessageEdited") {
		t.Error("different kind for the same id was suppressed")
	}
	if d.Seen(43, "ReceiveMessage") {
		t.Error("different id for the same kind was suppressed")
	}
}

func TestDedup_Forget(t *testing.T) {
	d := NewDedup()
	d.Seen(42, "ReceiveMessage")
	d.Seen(42, "MessageEdited")
	d.Seen(43, "ReceiveMessage")

	d.Forget(42)
	if d.Len() != 1 {
		t.Errorf("Len = %d after Forget", d.Len())
	}
	if d.Seen(42, "ReceiveMessage") {
		t.Error("forgotten pair still suppressed")
	}
}

func TestDedup_Concurrent(t *testing.T) {
	d := NewDedup()
	var wg sync.WaitGroup
	passed := make(chan struct{}, 64)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := int64(1); id <= 8; id++ {
				if !d.Seen(id, "ReceiveMessage") {
					passed <- struct{}{}
				}
			}
		}()
	}
	wg.Wait()
	close(passed)

	n := 0
	for range passed {
		n++
	}
	if n != 8 {
		t.Errorf("each id should pass exactly once, got %d passes", n)
	}
}
