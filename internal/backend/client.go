// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package backend wraps the gRPC services of the chat backend, the
// system of record for users, rooms, messages, friends, and group
// membership. Every call is bounded by the configured timeout, maps
// status codes onto the internal error taxonomy, and records metrics.
package backend

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/DanWeld/ChatSystemSEP3/gen/chatpb"
	"github.com/DanWeld/ChatSystemSEP3/internal/config"
	"github.com/DanWeld/ChatSystemSEP3/internal/errs"
	"github.com/DanWeld/ChatSystemSEP3/internal/metrics"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
)

// Client is the gateway's handle on the backend. Methods are safe for
// concurrent use.
type Client struct {
	conn        *grpc.ClientConn
	callTimeout time.Duration

	users   chatpb.UserServiceClient
	chats   chatpb.ChatServiceClient
	friends chatpb.FriendServiceClient
	groups  chatpb.GroupChatServiceClient
}

// Dial connects to the backend. The connection is lazy; RPC failures
// surface as CodeUnavailable until the backend is reachable.
func Dial(cfg config.BackendConfig) (*Client, error) {
	conn, err := grpc.NewClient(cfg.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, errs.Wrap(errs.CodeUnavailable, "backend unreachable", err)
	}
	return newClient(conn, cfg.CallTimeout), nil
}

// NewWithConn builds a client over an existing connection. Used by
// tests with bufconn.
func NewWithConn(conn *grpc.ClientConn, callTimeout time.Duration) *Client {
	return newClient(conn, callTimeout)
}

func newClient(conn *grpc.ClientConn, callTimeout time.Duration) *Client {
	if callTimeout <= 0 {
		callTimeout = 5 * time.Second
	}
	return &Client{
		conn:        conn,
		callTimeout: callTimeout,
		users:       chatpb.NewUserServiceClient(conn),
		chats:       chatpb.NewChatServiceClient(conn),
		friends:     chatpb.NewFriendServiceClient(conn),
		groups:      chatpb.NewGroupChatServiceClient(conn),
	}
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// call runs one unary RPC with the shared timeout, instrumentation,
// and error mapping.
func call[T any](ctx context.Context, c *Client, service, method string, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	start := time.Now()
	out, err := fn(ctx)
	metrics.RecordBackendRPC(service, method, status.Code(err).String(), time.Since(start))
	if err != nil {
		var zero T
		return zero, errs.FromGRPC(err)
	}
	return out, nil
}

// ===== UserService =====

// RegisterUser creates an account and returns the new user.
func (c *Client) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	resp, err := call(ctx, c, "UserService", "RegisterUser", func(ctx context.Context) (*chatpb.RegisterUserResponse, error) {
		return c.users.RegisterUser(ctx, &chatpb.RegisterUserRequest{Username: username, Password: password})
	})
	if err != nil {
		return models.User{}, err
	}
	return models.UserFromProto(resp.GetUser()), nil
}

// Login verifies credentials and returns the user.
func (c *Client) Login(ctx context.Context, username, password string) (models.User, error) {
	resp, err := call(ctx, c, "UserService", "Login", func(ctx context.Context) (*chatpb.LoginResponse, error) {
		return c.users.Login(ctx, &chatpb.LoginRequest{Username: username, Password: password})
	})
	if err != nil {
		return models.User{}, err
	}
	return models.UserFromProto(resp.GetUser()), nil
}

// GetUser looks up a user by ID.
func (c *Client) GetUser(ctx context.Context, userID int64) (models.User, error) {
	resp, err := call(ctx, c, "UserService", "GetUser", func(ctx context.Context) (*chatpb.GetUserResponse, error) {
		return c.users.GetUser(ctx, &chatpb.GetUserRequest{UserId: userID})
	})
	if err != nil {
		return models.User{}, err
	}
	return models.UserFromProto(resp.GetUser()), nil
}

// ===== ChatService =====

// SendMessage persists a message and returns the canonical envelope.
func (c *Client) SendMessage(ctx context.Context, roomID, senderID int64, text string) (models.Message, error) {
	resp, err := call(ctx, c, "ChatService", "SendMessage", func(ctx context.Context) (*chatpb.SendMessageResponse, error) {
		return c.chats.SendMessage(ctx, &chatpb.SendMessageRequest{
			ChatRoomId: roomID,
			SenderId:   senderID,
			Text:       text,
		})
	})
	if err != nil {
		return models.Message{}, err
	}
	return models.MessageFromProto(resp.GetMessage()), nil
}

// GetMessages returns a room's message history.
func (c *Client) GetMessages(ctx context.Context, roomID int64) ([]models.Message, error) {
	resp, err := call(ctx, c, "ChatService", "GetMessages", func(ctx context.Context) (*chatpb.GetMessagesResponse, error) {
		return c.chats.GetMessages(ctx, &chatpb.GetMessagesRequest{ChatRoomId: roomID})
	})
	if err != nil {
		return nil, err
	}
	return models.MessagesFromProto(resp.GetMessages()), nil
}

// SearchMessages returns the messages in a room matching query.
func (c *Client) SearchMessages(ctx context.Context, roomID int64, query string) ([]models.Message, error) {
	resp, err := call(ctx, c, "ChatService", "SearchMessages", func(ctx context.Context) (*chatpb.GetMessagesResponse, error) {
		return c.chats.SearchMessages(ctx, &chatpb.SearchMessagesRequest{ChatRoomId: roomID, Query: query})
	})
	if err != nil {
		return nil, err
	}
	return models.MessagesFromProto(resp.GetMessages()), nil
}

// EditMessage replaces a message's text; only the sender may edit.
func (c *Client) EditMessage(ctx context.Context, messageID, senderID int64, text string) (models.Message, error) {
	msg, err := call(ctx, c, "ChatService", "EditMessage", func(ctx context.Context) (*chatpb.Message, error) {
		return c.chats.EditMessage(ctx, &chatpb.EditMessageRequest{
			MessageId: messageID,
			SenderId:  senderID,
			Text:      text,
		})
	})
	if err != nil {
		return models.Message{}, err
	}
	return models.MessageFromProto(msg), nil
}

// DeleteMessage soft-deletes a message; the backend decides whether
// requesterID is allowed to.
func (c *Client) DeleteMessage(ctx context.Context, messageID, requesterID int64) (models.Message, error) {
	msg, err := call(ctx, c, "ChatService", "DeleteMessage", func(ctx context.Context) (*chatpb.Message, error) {
		return c.chats.DeleteMessage(ctx, &chatpb.DeleteMessageRequest{
			MessageId:   messageID,
			RequesterId: requesterID,
		})
	})
	if err != nil {
		return models.Message{}, err
	}
	return models.MessageFromProto(msg), nil
}

// ListChatRooms returns all public rooms.
func (c *Client) ListChatRooms(ctx context.Context) ([]models.ChatRoom, error) {
	resp, err := call(ctx, c, "ChatService", "ListChatRooms", func(ctx context.Context) (*chatpb.ListChatRoomsResponse, error) {
		return c.chats.ListChatRooms(ctx, &emptypb.Empty{})
	})
	if err != nil {
		return nil, err
	}
	return models.ChatRoomsFromProto(resp.GetRooms()), nil
}

// CreateChatRoom creates a public room.
func (c *Client) CreateChatRoom(ctx context.Context, name string) (models.ChatRoom, error) {
	resp, err := call(ctx, c, "ChatService", "CreateChatRoom", func(ctx context.Context) (*chatpb.CreateChatRoomResponse, error) {
		return c.chats.CreateChatRoom(ctx, &chatpb.CreateChatRoomRequest{Name: name})
	})
	if err != nil {
		return models.ChatRoom{}, err
	}
	return models.ChatRoomFromProto(resp.GetRoom()), nil
}

// Ping checks backend reachability for the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListChatRooms(ctx)
	return err
}

// ===== FriendService =====

// SendFriendRequest targets a user by username.
func (c *Client) SendFriendRequest(ctx context.Context, requesterID int64, targetUsername string) (models.FriendRequest, error) {
	resp, err := call(ctx, c, "FriendService", "SendFriendRequest", func(ctx context.Context) (*chatpb.SendFriendRequestResponse, error) {
		return c.friends.SendFriendRequest(ctx, &chatpb.SendFriendRequestRequest{
			RequesterId:    requesterID,
			TargetUsername: targetUsername,
		})
	})
	if err != nil {
		return models.FriendRequest{}, err
	}
	return models.FriendRequestFromProto(resp.GetRequest()), nil
}

// RespondFriendRequest accepts or declines a pending request.
func (c *Client) RespondFriendRequest(ctx context.Context, requestID int64, accept bool) (models.FriendRequest, error) {
	resp, err := call(ctx, c, "FriendService", "RespondFriendRequest", func(ctx context.Context) (*chatpb.RespondFriendRequestResponse, error) {
		return c.friends.RespondFriendRequest(ctx, &chatpb.RespondFriendRequestRequest{
			RequestId: requestID,
			Accept:    accept,
		})
	})
	if err != nil {
		return models.FriendRequest{}, err
	}
	return models.FriendRequestFromProto(resp.GetRequest()), nil
}

// ListIncomingRequests returns pending requests addressed to userID.
func (c *Client) ListIncomingRequests(ctx context.Context, userID int64) ([]models.FriendRequest, error) {
	resp, err := call(ctx, c, "FriendService", "ListIncomingRequests", func(ctx context.Context) (*chatpb.ListFriendRequestsResponse, error) {
		return c.friends.ListIncomingRequests(ctx, &chatpb.ListFriendRequestsRequest{UserId: userID})
	})
	if err != nil {
		return nil, err
	}
	return models.FriendRequestsFromProto(resp.GetRequests()), nil
}

// ListFriends returns userID's friend list.
func (c *Client) ListFriends(ctx context.Context, userID int64) ([]models.Friend, error) {
	resp, err := call(ctx, c, "FriendService", "ListFriends", func(ctx context.Context) (*chatpb.ListFriendsResponse, error) {
		return c.friends.ListFriends(ctx, &chatpb.ListFriendsRequest{UserId: userID})
	})
	if err != nil {
		return nil, err
	}
	return models.FriendsFromProto(resp.GetFriends()), nil
}

// RemoveFriend deletes a friendship in both directions.
func (c *Client) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	_, err := call(ctx, c, "FriendService", "RemoveFriend", func(ctx context.Context) (*emptypb.Empty, error) {
		return c.friends.RemoveFriend(ctx, &chatpb.RemoveFriendRequest{UserId: userID, FriendId: friendID})
	})
	return err
}

// ===== GroupChatService =====

// CreateGroupChat creates a group chat owned by ownerID.
func (c *Client) CreateGroupChat(ctx context.Context, ownerID int64, name, description string, memberIDs []int64) (models.ChatRoom, error) {
	resp, err := call(ctx, c, "GroupChatService", "CreateGroupChat", func(ctx context.Context) (*chatpb.CreateGroupChatResponse, error) {
		return c.groups.CreateGroupChat(ctx, &chatpb.CreateGroupChatRequest{
			OwnerId:     ownerID,
			Name:        name,
			Description: description,
			MemberIds:   memberIDs,
		})
	})
	if err != nil {
		return models.ChatRoom{}, err
	}
	return models.ChatRoomFromProto(resp.GetRoom()), nil
}

// AddMember adds userID to a group chat on requesterID's authority.
func (c *Client) AddMember(ctx context.Context, roomID, requesterID, userID int64) error {
	_, err := call(ctx, c, "GroupChatService", "AddMember", func(ctx context.Context) (*emptypb.Empty, error) {
		return c.groups.AddMember(ctx, &chatpb.AddMemberRequest{
			ChatRoomId:  roomID,
			RequesterId: requesterID,
			UserId:      userID,
		})
	})
	return err
}

// RemoveMember removes userID from a group chat.
func (c *Client) RemoveMember(ctx context.Context, roomID, requesterID, userID int64) error {
	_, err := call(ctx, c, "GroupChatService", "RemoveMember", func(ctx context.Context) (*emptypb.Empty, error) {
		return c.groups.RemoveMember(ctx, &chatpb.RemoveMemberRequest{
			ChatRoomId:  roomID,
			RequesterId: requesterID,
			UserId:      userID,
		})
	})
	return err
}

// PromoteMember raises userID to admin in a group chat.
func (c *Client) PromoteMember(ctx context.Context, roomID, requesterID, userID int64) error {
	_, err := call(ctx, c, "GroupChatService", "PromoteMember", func(ctx context.Context) (*emptypb.Empty, error) {
		return c.groups.PromoteMember(ctx, &chatpb.PromoteMemberRequest{
			ChatRoomId:  roomID,
			RequesterId: requesterID,
			UserId:      userID,
		})
	})
	return err
}

// ListMembers returns a group chat's membership with roles.
func (c *Client) ListMembers(ctx context.Context, roomID int64) ([]models.ChatRoomMember, error) {
	resp, err := call(ctx, c, "GroupChatService", "ListMembers", func(ctx context.Context) (*chatpb.ListMembersResponse, error) {
		return c.groups.ListMembers(ctx, &chatpb.ListMembersRequest{ChatRoomId: roomID})
	})
	if err != nil {
		return nil, err
	}
	return models.MembersFromProto(resp.GetMembers()), nil
}

// ListUserChatRooms returns the rooms userID belongs to.
func (c *Client) ListUserChatRooms(ctx context.Context, userID int64) ([]models.ChatRoom, error) {
	resp, err := call(ctx, c, "GroupChatService", "ListUserChatRooms", func(ctx context.Context) (*chatpb.ListUserChatRoomsResponse, error) {
		return c.groups.ListUserChatRooms(ctx, &chatpb.ListUserChatRoomsRequest{UserId: userID})
	})
	if err != nil {
		return nil, err
	}
	return models.ChatRoomsFromProto(resp.GetRooms()), nil
}

// GetPrivateChatRoom returns (creating if needed) the 1:1 room between
// two users.
func (c *Client) GetPrivateChatRoom(ctx context.Context, userID1, userID2 int64) (models.ChatRoom, error) {
	resp, err := call(ctx, c, "GroupChatService", "GetPrivateChatRoom", func(ctx context.Context) (*chatpb.GetPrivateChatRoomResponse, error) {
		return c.groups.GetPrivateChatRoom(ctx, &chatpb.GetPrivateChatRoomRequest{
			UserId1: userID1,
			UserId2: userID2,
		})
	})
	if err != nil {
		return models.ChatRoom{}, err
	}
	return models.ChatRoomFromProto(resp.GetRoom()), nil
}
