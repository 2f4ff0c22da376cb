// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package models

import (
	"time"

	"github.com/DanWeld/ChatSystemSEP3/gen/chatpb"
)

// User is the public user representation.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ChatRoom is the public chat room representation.
type ChatRoom struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Message is the canonical message envelope. The backend is the system
// of record; the gateway relays these fields verbatim and only converts
// the timestamp from unix seconds to UTC.
type Message struct {
	ID         int64     `json:"id"`
	ChatRoomID int64     `json:"chat_room_id"`
	SenderID   int64     `json:"sender_id"`
	Text       string    `json:"text"`
	SentAtUTC  time.Time `json:"sent_at_utc"`
	IsEdited   bool      `json:"is_edited"`
	IsDeleted  bool      `json:"is_deleted"`
}

// Friend is one entry of a user's friend list.
type Friend struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// FriendRequest is a pending or resolved friend request.
type FriendRequest struct {
	ID             int64     `json:"id"`
	SenderID       int64     `json:"sender_id"`
	SenderUsername string    `json:"sender_username"`
	ReceiverID     int64     `json:"receiver_id"`
	Status         string    `json:"status"`
	CreatedAtUTC   time.Time `json:"created_at_utc"`
}

// ChatRoomMember is one member of a group chat with their role.
type ChatRoomMember struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// UserFromProto converts a backend user.
func UserFromProto(u *chatpb.User) User {
	if u == nil {
		return User{}
	}
	return User{ID: u.GetId(), Username: u.GetUsername()}
}

// ChatRoomFromProto converts a backend chat room.
func ChatRoomFromProto(r *chatpb.ChatRoom) ChatRoom {
	if r == nil {
		return ChatRoom{}
	}
	return ChatRoom{ID: r.GetId(), Name: r.GetName()}
}

// ChatRoomsFromProto converts a backend room list.
func ChatRoomsFromProto(rs []*chatpb.ChatRoom) []ChatRoom {
	out := make([]ChatRoom, 0, len(rs))
	for _, r := range rs {
		out = append(out, ChatRoomFromProto(r))
	}
	return out
}

// MessageFromProto converts a backend message, turning the unix-seconds
// timestamp into UTC.
func MessageFromProto(m *chatpb.Message) Message {
	if m == nil {
		return Message{}
	}
	return Message{
		ID:         m.GetId(),
		ChatRoomID: m.GetChatRoomId(),
		SenderID:   m.GetSenderId(),
		Text:       m.GetText(),
		SentAtUTC:  time.Unix(m.GetSentAtUnix(), 0).UTC(),
		IsEdited:   m.GetIsEdited(),
		IsDeleted:  m.GetIsDeleted(),
	}
}

// MessagesFromProto converts a backend message list.
func MessagesFromProto(ms []*chatpb.Message) []Message {
	out := make([]Message, 0, len(ms))
	for _, m := range ms {
		out = append(out, MessageFromProto(m))
	}
	return out
}

// FriendFromProto converts a backend friend entry.
func FriendFromProto(f *chatpb.Friend) Friend {
	if f == nil {
		return Friend{}
	}
	return Friend{UserID: f.GetUserId(), Username: f.GetUsername()}
}

// FriendsFromProto converts a backend friend list.
func FriendsFromProto(fs []*chatpb.Friend) []Friend {
	out := make([]Friend, 0, len(fs))
	for _, f := range fs {
		out = append(out, FriendFromProto(f))
	}
	return out
}

// FriendRequestFromProto converts a backend friend request.
func FriendRequestFromProto(r *chatpb.FriendRequest) FriendRequest {
	if r == nil {
		return FriendRequest{}
	}
	return FriendRequest{
		ID:             r.GetId(),
		SenderID:       r.GetSenderId(),
		SenderUsername: r.GetSenderUsername(),
		ReceiverID:     r.GetReceiverId(),
		Status:         r.GetStatus(),
		CreatedAtUTC:   time.Unix(r.GetCreatedAtUnix(), 0).UTC(),
	}
}

// FriendRequestsFromProto converts a backend friend request list.
func FriendRequestsFromProto(rs []*chatpb.FriendRequest) []FriendRequest {
	out := make([]FriendRequest, 0, len(rs))
	for _, r := range rs {
		out = append(out, FriendRequestFromProto(r))
	}
	return out
}

// MemberFromProto converts a backend room member.
func MemberFromProto(m *chatpb.ChatRoomMember) ChatRoomMember {
	if m == nil {
		return ChatRoomMember{}
	}
	return ChatRoomMember{UserID: m.GetUserId(), Username: m.GetUsername(), Role: m.GetRole()}
}

// MembersFromProto converts a backend member list.
func MembersFromProto(ms []*chatpb.ChatRoomMember) []ChatRoomMember {
	out := make([]ChatRoomMember, 0, len(ms))
	for _, m := range ms {
		out = append(out, MemberFromProto(m))
	}
	return out
}
