// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package backend

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/DanWeld/ChatSystemSEP3/gen/chatpb"
	"github.com/DanWeld/ChatSystemSEP3/internal/errs"
)

// fakeChatServer scripts ChatService responses for client tests.
type fakeChatServer struct {
	chatpb.UnimplementedChatServiceServer

	sendResp  *chatpb.Message
	sendErr   error
	deleteErr error
}

func (s *fakeChatServer) SendMessage(ctx context.Context, req *chatpb.SendMessageRequest) (*chatpb.SendMessageResponse, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	msg := s.sendResp
	if msg == nil {
		msg = &chatpb.Message{
			Id:         1,
			ChatRoomId: req.GetChatRoomId(),
			SenderId:   req.GetSenderId(),
			Text:       req.GetText(),
			SentAtUnix: time.Now().Unix(),
		}
	}
	return &chatpb.SendMessageResponse{Message: msg}, nil
}

func (s *fakeChatServer) DeleteMessage(ctx context.Context, req *chatpb.DeleteMessageRequest) (*chatpb.Message, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return &chatpb.Message{Id: req.GetMessageId(), IsDeleted: true}, nil
}

func (s *fakeChatServer) ListChatRooms(ctx context.Context, _ *emptypb.Empty) (*chatpb.ListChatRoomsResponse, error) {
	return &chatpb.ListChatRoomsResponse{Rooms: []*chatpb.ChatRoom{{Id: 1, Name: "general"}}}, nil
}

type fakeUserServer struct {
	chatpb.UnimplementedUserServiceServer
}

func (s *fakeUserServer) Login(ctx context.Context, req *chatpb.LoginRequest) (*chatpb.LoginResponse, error) {
	if req.GetPassword() != "secret" {
		return nil, status.Error(codes.Unauthenticated, "bad credentials")
	}
	return &chatpb.LoginResponse{User: &chatpb.User{Id: 7, Username: req.GetUsername()}}, nil
}

// newBufconnClient spins up an in-process gRPC server and returns a
// Client wired to it.
func newBufconnClient(t *testing.T, chat *fakeChatServer) *Client {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	chatpb.RegisterChatServiceServer(srv, chat)
	chatpb.RegisterUserServiceServer(srv, &fakeUserServer{})
	go func() {
		//nolint:errcheck // listener closed at test end
		_ = srv.Serve(lis)
	}()
	t.Cleanup(func() {
		srv.Stop()
		_ = lis.Close()
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufnet: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return NewWithConn(conn, 2*time.Second)
}

func TestSendMessage_RelaysEnvelope(t *testing.T) {
	client := newBufconnClient(t, &fakeChatServer{
		sendResp: &chatpb.Message{
			Id:         99,
			ChatRoomId: 4,
			SenderId:   7,
			Text:       "hi",
			SentAtUnix: 1767366245,
		},
	})

	msg, err := client.SendMessage(context.Background(), 4, 7, "hi")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.ID != 99 || msg.ChatRoomID != 4 || msg.SenderID != 7 || msg.Text != "hi" {
		t.Errorf("envelope not relayed verbatim: %+v", msg)
	}
	if msg.SentAtUTC.Unix() != 1767366245 {
		t.Errorf("timestamp not preserved: %v", msg.SentAtUTC)
	}
}

func TestSendMessage_MapsStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Code
	}{
		{"not found", status.Error(codes.NotFound, "no such room"), errs.CodeNotFound},
		{"invalid", status.Error(codes.InvalidArgument, "empty text"), errs.CodeInvalidArgument},
		{"internal", status.Error(codes.Internal, "db down"), errs.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBufconnClient(t, &fakeChatServer{sendErr: tt.err})
			_, err := client.SendMessage(context.Background(), 1, 1, "x")
			if errs.CodeOf(err) != tt.want {
				t.Errorf("code = %q, want %q (err: %v)", errs.CodeOf(err), tt.want, err)
			}
		})
	}
}

func TestDeleteMessage_PermissionDenied(t *testing.T) {
	client := newBufconnClient(t, &fakeChatServer{
		deleteErr: status.Error(codes.PermissionDenied, "not the sender"),
	})

	_, err := client.DeleteMessage(context.Background(), 5, 2)
	if !errors.Is(err, errs.New(errs.CodePermissionDenied, "")) {
		t.Errorf("want permission denied, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	client := newBufconnClient(t, &fakeChatServer{})

	user, err := client.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != 7 || user.Username != "alice" {
		t.Errorf("user = %+v", user)
	}

	_, err = client.Login(context.Background(), "alice", "wrong")
	if errs.CodeOf(err) != errs.CodeUnauthenticated {
		t.Errorf("bad password should map to unauthenticated, got %v", err)
	}
}

func TestPing(t *testing.T) {
	client := newBufconnClient(t, &fakeChatServer{})
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestUnreachableBackend_MapsToUnavailable(t *testing.T) {
	conn, err := grpc.NewClient("127.0.0.1:1",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	client := NewWithConn(conn, 500*time.Millisecond)
	_, err = client.ListChatRooms(context.Background())
	if errs.CodeOf(err) != errs.CodeUnavailable {
		t.Errorf("want unavailable, got %v (code %q)", err, errs.CodeOf(err))
	}
}
