// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Message bindings for proto/chat.proto. See doc.go for the maintenance
// rules; field tags must stay in sync with the proto schema.

package chatpb

import (
	proto "github.com/golang/protobuf/proto"
)

// ===== Entities =====

type User struct {
	Id       int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Username string `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *User) Reset()         { *m = User{} }
func (m *User) String() string { return proto.CompactTextString(m) }
func (*User) ProtoMessage()    {}

func (m *User) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *User) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

type ChatRoom struct {
	Id   int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *ChatRoom) Reset()         { *m = ChatRoom{} }
func (m *ChatRoom) String() string { return proto.CompactTextString(m) }
func (*ChatRoom) ProtoMessage()    {}

func (m *ChatRoom) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *ChatRoom) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type Message struct {
	Id         int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	ChatRoomId int64  `protobuf:"varint,2,opt,name=chat_room_id,json=chatRoomId,proto3" json:"chat_room_id,omitempty"`
	SenderId   int64  `protobuf:"varint,3,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Text       string `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	SentAtUnix int64  `protobuf:"varint,5,opt,name=sent_at_unix,json=sentAtUnix,proto3" json:"sent_at_unix,omitempty"`
	IsEdited   bool   `protobuf:"varint,6,opt,name=is_edited,json=isEdited,proto3" json:"is_edited,omitempty"`
	IsDeleted  bool   `protobuf:"varint,7,opt,name=is_deleted,json=isDeleted,proto3" json:"is_deleted,omitempty"`
}

func (m *Message) Reset()         { *m = Message{} }
func (m *Message) String() string { return proto.CompactTextString(m) }
func (*Message) ProtoMessage()    {}

func (m *Message) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Message) GetChatRoomId() int64 {
	if m != nil {
		return m.ChatRoomId
	}
	return 0
}

func (m *Message) GetSenderId() int64 {
	if m != nil {
		return m.SenderId
	}
	return 0
}

func (m *Message) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

func (m *Message) GetSentAtUnix() int64 {
	if m != nil {
		return m.SentAtUnix
	}
	return 0
}

func (m *Message) GetIsEdited() bool {
	if m != nil {
		return m.IsEdited
	}
	return false
}

func (m *Message) GetIsDeleted() bool {
	if m != nil {
		return m.IsDeleted
	}
	return false
}

type Friend struct {
	UserId   int64  `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Username string `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *Friend) Reset()         { *m = Friend{} }
func (m *Friend) String() string { return proto.CompactTextString(m) }
func (*Friend) ProtoMessage()    {}

func (m *Friend) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *Friend) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

type FriendRequest struct {
	Id             int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	SenderId       int64  `protobuf:"varint,2,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	SenderUsername string `protobuf:"bytes,3,opt,name=sender_username,json=senderUsername,proto3" json:"sender_username,omitempty"`
	ReceiverId     int64  `protobuf:"varint,4,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
	Status         string `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAtUnix  int64  `protobuf:"varint,6,opt,name=created_at_unix,json=createdAtUnix,proto3" json:"created_at_unix,omitempty"`
}

func (m *FriendRequest) Reset()         { *m = FriendRequest{} }
func (m *FriendRequest) String() string { return proto.CompactTextString(m) }
func (*FriendRequest) ProtoMessage()    {}

func (m *FriendRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *FriendRequest) GetSenderId() int64 {
	if m != nil {
		return m.SenderId
	}
	return 0
}

func (m *FriendRequest) GetSenderUsername() string {
	if m != nil {
		return m.SenderUsername
	}
	return ""
}

func (m *FriendRequest) GetReceiverId() int64 {
	if m != nil {
		return m.ReceiverId
	}
	return 0
}

func (m *FriendRequest) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *FriendRequest) GetCreatedAtUnix() int64 {
	if m != nil {
		return m.CreatedAtUnix
	}
	return 0
}

type ChatRoomMember struct {
	UserId   int64  `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Username string `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	Role     string `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
}

func (m *ChatRoomMember) Reset()         { *m = ChatRoomMember{} }
func (m *ChatRoomMember) String() string { return proto.CompactTextString(m) }
func (*ChatRoomMember) ProtoMessage()    {}

func (m *ChatRoomMember) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *ChatRoomMember) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *ChatRoomMember) GetRole() string {
	if m != nil {
		return m.Role
	}
	return ""
}

// ===== UserService =====

type RegisterUserRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *RegisterUserRequest) Reset()         { *m = RegisterUserRequest{} }
func (m *RegisterUserRequest) String() string { return proto.CompactTextString(m) }
func (*RegisterUserRequest) ProtoMessage()    {}

func (m *RegisterUserRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *RegisterUserRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type RegisterUserResponse struct {
	User *User `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
}

func (m *RegisterUserResponse) Reset()         { *m = RegisterUserResponse{} }
func (m *RegisterUserResponse) String() string { return proto.CompactTextString(m) }
func (*RegisterUserResponse) ProtoMessage()    {}

func (m *RegisterUserResponse) GetUser() *User {
	if m != nil {
		return m.User
	}
	return nil
}

type LoginRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *LoginRequest) Reset()         { *m = LoginRequest{} }
func (m *LoginRequest) String() string { return proto.CompactTextString(m) }
func (*LoginRequest) ProtoMessage()    {}

func (m *LoginRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *LoginRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type LoginResponse struct {
	User *User `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
}

func (m *LoginResponse) Reset()         { *m = LoginResponse{} }
func (m *LoginResponse) String() string { return proto.CompactTextString(m) }
func (*LoginResponse) ProtoMessage()    {}

func (m *LoginResponse) GetUser() *User {
	if m != nil {
		return m.User
	}
	return nil
}

type GetUserRequest struct {
	UserId int64 `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *GetUserRequest) Reset()         { *m = GetUserRequest{} }
func (m *GetUserRequest) String() string { return proto.CompactTextString(m) }
func (*GetUserRequest) ProtoMessage()    {}

func (m *GetUserRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type GetUserResponse struct {
	User *User `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
}

func (m *GetUserResponse) Reset()         { *m = GetUserResponse{} }
func (m *GetUserResponse) String() string { return proto.CompactTextString(m) }
func (*GetUserResponse) ProtoMessage()    {}

func (m *GetUserResponse) GetUser() *User {
	if m != nil {
		return m.User
	}
	return nil
}

// ===== ChatService =====

type SendMessageRequest struct {
	ChatRoomId int64  `protobuf:"varint,1,opt,name=chat_room_id,json=chatRoomId,proto3" json:"chat_room_id,omitempty"`
	SenderId   int64  `protobuf:"varint,2,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Text       string `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *SendMessageRequest) Reset()         { *m = SendMessageRequest{} }
func (m *SendMessageRequest) String() string { return proto.CompactTextString(m) }
func (*SendMessageRequest) ProtoMessage()    {}

func (m *SendMessageRequest) GetChatRoomId() int64 {
	if m != nil {
		return m.ChatRoomId
	}
	return 0
}

func (m *SendMessageRequest) GetSenderId() int64 {
	if m != nil {
		return m.SenderId
	}
	return 0
}

func (m *SendMessageRequest) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

type SendMessageResponse struct {
	Message *Message `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *SendMessageResponse) Reset()         { *m = SendMessageResponse{} }
func (m *SendMessageResponse) String() string { return proto.CompactTextString(m) }
func (*SendMessageResponse) ProtoMessage()    {}

func (m *SendMessageResponse) GetMessage() *Message {
	if m != nil {
		return m.Message
	}
	return nil
}

type GetMessagesRequest struct {
	ChatRoomId int64 `protobuf:"varint,1,opt,name=chat_room_id,json=chatRoomId,proto3" json:"chat_room_id,omitempty"`
}

func (m *GetMessagesRequest) Reset()         { *m = GetMessagesRequest{} }
func (m *GetMessagesRequest) String() string { return proto.CompactTextString(m) }
func (*GetMessagesRequest) ProtoMessage()    {}

func (m *GetMessagesRequest) GetChatRoomId() int64 {
	if m != nil {
		return m.ChatRoomId
	}
	return 0
}

type GetMessagesResponse struct {
	Messages []*Message `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
}

func (m *GetMessagesResponse) Reset()         { *m = GetMessagesResponse{} }
func (m *GetMessagesResponse) String() string { return proto.CompactTextString(m) }
func (*GetMessagesResponse) ProtoMessage()    {}

func (m *GetMessagesResponse) GetMessages() []*Message {
	if m != nil {
		return m.Messages
	}
	return nil
}

type SearchMessagesRequest struct {
	ChatRoomId int64  `protobuf:"varint,1,opt,name=chat_room_id,json=chatRoomId,proto3" json:"chat_room_id,omitempty"`
	Query      string `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
}

func (m *SearchMessagesRequest) Reset()         { *m = SearchMessagesRequest{} }
func (m *SearchMessagesRequest) String() string { return proto.CompactTextString(m) }
func (*SearchMessagesRequest) ProtoMessage()    {}

func (m *SearchMessagesRequest) GetChatRoomId() int64 {
	if m != nil {
		return m.ChatRoomId
	}
	return 0
}

func (m *SearchMessagesRequest) GetQuery() string {
	if m != nil {
		return m.Query
	}
	return ""
}

type EditMessageRequest struct {
	MessageId int64  `protobuf:"varint,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	SenderId  int64  `protobuf:"varint,2,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Text      string `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *EditMessageRequest) Reset()         { *m = EditMessageRequest{} }
func (m *EditMessageRequest) String() string { return proto.CompactTextString(m) }
func (*EditMessageRequest) ProtoMessage()    {}

func (m *EditMessageRequest) GetMessageId() int64 {
	if m != nil {
		return m.MessageId
	}
	return 0
}

func (m *EditMessageRequest) GetSenderId() int64 {
	if m != nil {
		return m.SenderId
	}
	return 0
}

func (m *EditMessageRequest) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

type DeleteMessageRequest struct {
	MessageId   int64 `protobuf:"varint,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	RequesterId int64 `protobuf:"varint,2,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
}

func (m *DeleteMessageRequest) Reset()         { *m = DeleteMessageRequest{} }
func (m *DeleteMessageRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteMessageRequest) ProtoMessage()    {}

func (m *DeleteMessageRequest) GetMessageId() int64 {
	if m != nil {
		return m.MessageId
	}
	return 0
}

func (m *DeleteMessageRequest) GetRequesterId() int64 {
	if m != nil {
		return m.RequesterId
	}
	return 0
}

type ListChatRoomsResponse struct {
	Rooms []*ChatRoom `protobuf:"bytes,1,rep,name=rooms,proto3" json:"rooms,omitempty"`
}

func (m *ListChatRoomsResponse) Reset()         { *m = ListChatRoomsResponse{} }
func (m *ListChatRoomsResponse) String() string { return proto.CompactTextString(m) }
func (*ListChatRoomsResponse) ProtoMessage()    {}

func (m *ListChatRoomsResponse) GetRooms() []*ChatRoom {
	if m != nil {
		return m.Rooms
	}
	return nil
}

type CreateChatRoomRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *CreateChatRoomRequest) Reset()         { *m = CreateChatRoomRequest{} }
func (m *CreateChatRoomRequest) String() string { return proto.CompactTextString(m) }
func (*CreateChatRoomRequest) ProtoMessage()    {}

func (m *CreateChatRoomRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type CreateChatRoomResponse struct {
	Room *ChatRoom `protobuf:"bytes,1,opt,name=room,proto3" json:"room,omitempty"`
}

func (m *CreateChatRoomResponse) Reset()         { *m = CreateChatRoomResponse{} }
func (m *CreateChatRoomResponse) String() string { return proto.CompactTextString(m) }
func (*CreateChatRoomResponse) ProtoMessage()    {}

func (m *CreateChatRoomResponse) GetRoom() *ChatRoom {
	if m != nil {
		return m.Room
	}
	return nil
}

// ===== FriendService =====

type SendFriendRequestRequest struct {
	RequesterId    int64  `protobuf:"varint,1,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	TargetUsername string `protobuf:"bytes,2,opt,name=target_username,json=targetUsername,proto3" json:"target_username,omitempty"`
}

func (m *SendFriendRequestRequest) Reset()         { *m = SendFriendRequestRequest{} }
func (m *SendFriendRequestRequest) String() string { return proto.CompactTextString(m) }
func (*SendFriendRequestRequest) ProtoMessage()    {}

func (m *SendFriendRequestRequest) GetRequesterId() int64 {
	if m != nil {
		return m.RequesterId
	}
	return 0
}

func (m *SendFriendRequestRequest) GetTargetUsername() string {
	if m != nil {
		return m.TargetUsername
	}
	return ""
}

type SendFriendRequestResponse struct {
	Request *FriendRequest `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
}

func (m *SendFriendRequestResponse) Reset()         { *m = SendFriendRequestResponse{} }
func (m *SendFriendRequestResponse) String() string { return proto.CompactTextString(m) }
func (*SendFriendRequestResponse) ProtoMessage()    {}

func (m *SendFriendRequestResponse) GetRequest() *FriendRequest {
	if m != nil {
		return m.Request
	}
	return nil
}

type RespondFriendRequestRequest struct {
	RequestId int64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Accept    bool  `protobuf:"varint,2,opt,name=accept,proto3" json:"accept,omitempty"`
}

func (m *RespondFriendRequestRequest) Reset()         { *m = RespondFriendRequestRequest{} }
func (m *RespondFriendRequestRequest) String() string { return proto.CompactTextString(m) }
func (*RespondFriendRequestRequest) ProtoMessage()    {}

func (m *RespondFriendRequestRequest) GetRequestId() int64 {
	if m != nil {
		return m.RequestId
	}
	return 0
}

func (m *RespondFriendRequestRequest) GetAccept() bool {
	if m != nil {
		return m.Accept
	}
	return false
}

type RespondFriendRequestResponse struct {
	Request *FriendRequest `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
}

func (m *RespondFriendRequestResponse) Reset()         { *m = RespondFriendRequestResponse{} }
func (m *RespondFriendRequestResponse) String() string { return proto.CompactTextString(m) }
func (*RespondFriendRequestResponse) ProtoMessage()    {}

func (m *RespondFriendRequestResponse) GetRequest() *FriendRequest {
	if m != nil {
		return m.Request
	}
	return nil
}

type ListFriendRequestsRequest struct {
	UserId int64 `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *ListFriendRequestsRequest) Reset()         { *m = ListFriendRequestsRequest{} }
func (m *ListFriendRequestsRequest) String() string { return proto.CompactTextString(m) }
func (*ListFriendRequestsRequest) ProtoMessage()    {}

func (m *ListFriendRequestsRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type ListFriendRequestsResponse struct {
	Requests []*FriendRequest `protobuf:"bytes,1,rep,name=requests,proto3" json:"requests,omitempty"`
}

func (m *ListFriendRequestsResponse) Reset()         { *m = ListFriendRequestsResponse{} }
func (m *ListFriendRequestsResponse) String() string { return proto.CompactTextString(m) }
func (*ListFriendRequestsResponse) ProtoMessage()    {}

func (m *ListFriendRequestsResponse) GetRequests() []*FriendRequest {
	if m != nil {
		return m.Requests
	}
	return nil
}

type ListFriendsRequest struct {
	UserId int64 `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *ListFriendsRequest) Reset()         { *m = ListFriendsRequest{} }
func (m *ListFriendsRequest) String() string { return proto.CompactTextString(m) }
func (*ListFriendsRequest) ProtoMessage()    {}

func (m *ListFriendsRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type ListFriendsResponse struct {
	Friends []*Friend `protobuf:"bytes,1,rep,name=friends,proto3" json:"friends,omitempty"`
}

func (m *ListFriendsResponse) Reset()         { *m = ListFriendsResponse{} }
func (m *ListFriendsResponse) String() string { return proto.CompactTextString(m) }
func (*ListFriendsResponse) ProtoMessage()    {}

func (m *ListFriendsResponse) GetFriends() []*Friend {
	if m != nil {
		return m.Friends
	}
	return nil
}

type RemoveFriendRequest struct {
	UserId   int64 `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FriendId int64 `protobuf:"varint,2,opt,name=friend_id,json=friendId,proto3" json:"friend_id,omitempty"`
}

func (m *RemoveFriendRequest) Reset()         { *m = RemoveFriendRequest{} }
func (m *RemoveFriendRequest) String() string { return proto.CompactTextString(m) }
func (*RemoveFriendRequest) ProtoMessage()    {}

func (m *RemoveFriendRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

func (m *RemoveFriendRequest) GetFriendId() int64 {
	if m != nil {
		return m.FriendId
	}
	return 0
}

// ===== GroupChatService =====

type CreateGroupChatRequest struct {
	OwnerId     int64   `protobuf:"varint,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name        string  `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string  `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	MemberIds   []int64 `protobuf:"varint,4,rep,packed,name=member_ids,json=memberIds,proto3" json:"member_ids,omitempty"`
}

func (m *CreateGroupChatRequest) Reset()         { *m = CreateGroupChatRequest{} }
func (m *CreateGroupChatRequest) String() string { return proto.CompactTextString(m) }
func (*CreateGroupChatRequest) ProtoMessage()    {}

func (m *CreateGroupChatRequest) GetOwnerId() int64 {
	if m != nil {
		return m.OwnerId
	}
	return 0
}

func (m *CreateGroupChatRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateGroupChatRequest) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *CreateGroupChatRequest) GetMemberIds() []int64 {
	if m != nil {
		return m.MemberIds
	}
	return nil
}

type CreateGroupChatResponse struct {
	Room *ChatRoom `protobuf:"bytes,1,opt,name=room,proto3" json:"room,omitempty"`
}

func (m *CreateGroupChatResponse) Reset()         { *m = CreateGroupChatResponse{} }
func (m *CreateGroupChatResponse) String() string { return proto.CompactTextString(m) }
func (*CreateGroupChatResponse) ProtoMessage()    {}

func (m *CreateGroupChatResponse) GetRoom() *ChatRoom {
	if m != nil {
		return m.Room
	}
	return nil
}

type AddMemberRequest struct {
	ChatRoomId  int64 `protobuf:"varint,1,opt,name=chat_room_id,json=chatRoomId,proto3" json:"chat_room_id,omitempty"`
	RequesterId int64 `protobuf:"varint,2,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	UserId      int64 `protobuf:"varint,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *AddMemberRequest) Reset()         { *m = AddMemberRequest{} }
func (m *AddMemberRequest) String() string { return proto.CompactTextString(m) }
func (*AddMemberRequest) ProtoMessage()    {}

func (m *AddMemberRequest) GetChatRoomId() int64 {
	if m != nil {
		return m.ChatRoomId
	}
	return 0
}

func (m *AddMemberRequest) GetRequesterId() int64 {
	if m != nil {
		return m.RequesterId
	}
	return 0
}

func (m *AddMemberRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type RemoveMemberRequest struct {
	ChatRoomId  int64 `protobuf:"varint,1,opt,name=chat_room_id,json=chatRoomId,proto3" json:"chat_room_id,omitempty"`
	RequesterId int64 `protobuf:"varint,2,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	UserId      int64 `protobuf:"varint,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *RemoveMemberRequest) Reset()         { *m = RemoveMemberRequest{} }
func (m *RemoveMemberRequest) String() string { return proto.CompactTextString(m) }
func (*RemoveMemberRequest) ProtoMessage()    {}

func (m *RemoveMemberRequest) GetChatRoomId() int64 {
	if m != nil {
		return m.ChatRoomId
	}
	return 0
}

func (m *RemoveMemberRequest) GetRequesterId() int64 {
	if m != nil {
		return m.RequesterId
	}
	return 0
}

func (m *RemoveMemberRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type PromoteMemberRequest struct {
	ChatRoomId  int64 `protobuf:"varint,1,opt,name=chat_room_id,json=chatRoomId,proto3" json:"chat_room_id,omitempty"`
	RequesterId int64 `protobuf:"varint,2,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	UserId      int64 `protobuf:"varint,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *PromoteMemberRequest) Reset()         { *m = PromoteMemberRequest{} }
func (m *PromoteMemberRequest) String() string { return proto.CompactTextString(m) }
func (*PromoteMemberRequest) ProtoMessage()    {}

func (m *PromoteMemberRequest) GetChatRoomId() int64 {
	if m != nil {
		return m.ChatRoomId
	}
	return 0
}

func (m *PromoteMemberRequest) GetRequesterId() int64 {
	if m != nil {
		return m.RequesterId
	}
	return 0
}

func (m *PromoteMemberRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type ListMembersRequest struct {
	ChatRoomId int64 `protobuf:"varint,1,opt,name=chat_room_id,json=chatRoomId,proto3" json:"chat_room_id,omitempty"`
}

func (m *ListMembersRequest) Reset()         { *m = ListMembersRequest{} }
func (m *ListMembersRequest) String() string { return proto.CompactTextString(m) }
func (*ListMembersRequest) ProtoMessage()    {}

func (m *ListMembersRequest) GetChatRoomId() int64 {
	if m != nil {
		return m.ChatRoomId
	}
	return 0
}

type ListMembersResponse struct {
	Members []*ChatRoomMember `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
}

func (m *ListMembersResponse) Reset()         { *m = ListMembersResponse{} }
func (m *ListMembersResponse) String() string { return proto.CompactTextString(m) }
func (*ListMembersResponse) ProtoMessage()    {}

func (m *ListMembersResponse) GetMembers() []*ChatRoomMember {
	if m != nil {
		return m.Members
	}
	return nil
}

type ListUserChatRoomsRequest struct {
	UserId int64 `protobuf:"varint,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *ListUserChatRoomsRequest) Reset()         { *m = ListUserChatRoomsRequest{} }
func (m *ListUserChatRoomsRequest) String() string { return proto.CompactTextString(m) }
func (*ListUserChatRoomsRequest) ProtoMessage()    {}

func (m *ListUserChatRoomsRequest) GetUserId() int64 {
	if m != nil {
		return m.UserId
	}
	return 0
}

type ListUserChatRoomsResponse struct {
	Rooms []*ChatRoom `protobuf:"bytes,1,rep,name=rooms,proto3" json:"rooms,omitempty"`
}

func (m *ListUserChatRoomsResponse) Reset()         { *m = ListUserChatRoomsResponse{} }
func (m *ListUserChatRoomsResponse) String() string { return proto.CompactTextString(m) }
func (*ListUserChatRoomsResponse) ProtoMessage()    {}

func (m *ListUserChatRoomsResponse) GetRooms() []*ChatRoom {
	if m != nil {
		return m.Rooms
	}
	return nil
}

type GetPrivateChatRoomRequest struct {
	UserId1 int64 `protobuf:"varint,1,opt,name=user_id1,json=userId1,proto3" json:"user_id1,omitempty"`
	UserId2 int64 `protobuf:"varint,2,opt,name=user_id2,json=userId2,proto3" json:"user_id2,omitempty"`
}

func (m *GetPrivateChatRoomRequest) Reset()         { *m = GetPrivateChatRoomRequest{} }
func (m *GetPrivateChatRoomRequest) String() string { return proto.CompactTextString(m) }
func (*GetPrivateChatRoomRequest) ProtoMessage()    {}

func (m *GetPrivateChatRoomRequest) GetUserId1() int64 {
	if m != nil {
		return m.UserId1
	}
	return 0
}

func (m *GetPrivateChatRoomRequest) GetUserId2() int64 {
	if m != nil {
		return m.UserId2
	}
	return 0
}

type GetPrivateChatRoomResponse struct {
	Room *ChatRoom `protobuf:"bytes,1,opt,name=room,proto3" json:"room,omitempty"`
}

func (m *GetPrivateChatRoomResponse) Reset()         { *m = GetPrivateChatRoomResponse{} }
func (m *GetPrivateChatRoomResponse) String() string { return proto.CompactTextString(m) }
func (*GetPrivateChatRoomResponse) ProtoMessage()    {}

func (m *GetPrivateChatRoomResponse) GetRoom() *ChatRoom {
	if m != nil {
		return m.Room
	}
	return nil
}
