// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package models

import (
	"testing"
	"time"

	"github.com/DanWeld/ChatSystemSEP3/gen/chatpb"
)

func TestMessageFromProto(t *testing.T) {
	// 2026-01-02T15:04:05Z
	const sentAt = int64(1767366245)

	got := MessageFromProto(&chatpb.Message{
		Id:         42,
		ChatRoomId: 7,
		SenderId:   3,
		Text:       "hello",
		SentAtUnix: sentAt,
		IsEdited:   true,
	})

	if got.ID != 42 || got.ChatRoomID != 7 || got.SenderID != 3 {
		t.Errorf("ids not relayed: %+v", got)
	}
	if got.Text != "hello" {
		t.Errorf("Text = %q", got.Text)
	}
	if !got.IsEdited || got.IsDeleted {
		t.Errorf("flags not relayed: edited=%v deleted=%v", got.IsEdited, got.IsDeleted)
	}
	want := time.Unix(sentAt, 0).UTC()
	if !got.SentAtUTC.Equal(want) {
		t.Errorf("SentAtUTC = %v, want %v", got.SentAtUTC, want)
	}
	if got.SentAtUTC.Location() != time.UTC {
		t.Errorf("SentAtUTC location = %v, want UTC", got.SentAtUTC.Location())
	}
}

func TestMessageFromProto_Nil(t *testing.T) {
	got := MessageFromProto(nil)
	if got.ID != 0 || got.Text != "" {
		t.Errorf("nil proto should map to zero value, got %+v", got)
	}
}

func TestMessagesFromProto_EmptyNotNil(t *testing.T) {
	got := MessagesFromProto(nil)
	if got == nil {
		t.Error("empty list should serialize as [], not null")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFriendRequestFromProto(t *testing.T) {
	got := FriendRequestFromProto(&chatpb.FriendRequest{
		Id:             5,
		SenderId:       1,
		SenderUsername: "alice",
		ReceiverId:     2,
		Status:         "PENDING",
		CreatedAtUnix:  1767366245,
	})
	if got.SenderUsername != "alice" || got.Status != "PENDING" {
		t.Errorf("fields not relayed: %+v", got)
	}
	if got.CreatedAtUTC.IsZero() {
		t.Error("CreatedAtUTC should be converted")
	}
}

func TestChatRoomsFromProto(t *testing.T) {
	got := ChatRoomsFromProto([]*chatpb.ChatRoom{
		{Id: 1, Name: "general"},
		{Id: 2, Name: "random"},
	})
	if len(got) != 2 || got[0].Name != "general" || got[1].ID != 2 {
		t.Errorf("unexpected conversion: %+v", got)
	}
}
