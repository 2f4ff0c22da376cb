// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package models

// Request bodies for the REST surface. Validation limits match the
// backend's contract: usernames 3-50, passwords at least 6, message
// text 1-2000, room names 3-100, group names up to 100, descriptions
// up to 255.

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// SendMessageRequest posts a message to a room.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// EditMessageRequest replaces a message's text.
type EditMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// CreateChatRoomRequest creates a public room.
type CreateChatRoomRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
}

// CreateGroupChatRequest creates a group chat owned by the caller.
type CreateGroupChatRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"max=255"`
	MemberIDs   []int64 `json:"member_ids" validate:"dive,gt=0"`
}

// AddMemberRequest adds a user to a group chat.
type AddMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// SendFriendRequestRequest targets a user by username.
type SendFriendRequestRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
}

// RespondFriendRequestRequest accepts or declines a pending request.
type RespondFriendRequestRequest struct {
	Accept bool `json:"accept"`
}
