// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package errs

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"classified", New(CodeNotFound, "room not found"), CodeNotFound},
		{"wrapped classified", fmt.Errorf("handler: %w", New(CodePermissionDenied, "not the sender")), CodePermissionDenied},
		{"unclassified", errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs_MatchesByCode(t *testing.T) {
	err := Wrap(CodeUnavailable, "backend unreachable", errors.New("connection refused"))

	if !errors.Is(err, New(CodeUnavailable, "")) {
		t.Error("errors.Is should match on code regardless of message")
	}
	if errors.Is(err, New(CodeNotFound, "")) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(CodeUnavailable, "backend unreachable", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if MessageOf(err) != "backend unreachable" {
		t.Errorf("MessageOf() = %q, want client-safe message", MessageOf(err))
	}
}

func TestMessageOf_UnclassifiedNeverLeaks(t *testing.T) {
	err := errors.New("pq: password authentication failed for user")
	if got := MessageOf(err); got != "internal error" {
		t.Errorf("MessageOf(unclassified) = %q, want generic message", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeUnauthenticated, 401},
		{CodePermissionDenied, 403},
		{CodeNotFound, 404},
		{CodeAlreadyExists, 409},
		{CodeInvalidArgument, 400},
		{CodeUnavailable, 503},
		{CodeInternal, 500},
		{Code("bogus"), 500},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.code); got != tt.want {
			t.Errorf("HTTPStatus(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestFromGRPC(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"not found", status.Error(codes.NotFound, "no such room"), CodeNotFound},
		{"permission denied", status.Error(codes.PermissionDenied, "not the sender"), CodePermissionDenied},
		{"unauthenticated", status.Error(codes.Unauthenticated, "bad credentials"), CodeUnauthenticated},
		{"already exists", status.Error(codes.AlreadyExists, "username taken"), CodeAlreadyExists},
		{"invalid argument", status.Error(codes.InvalidArgument, "empty text"), CodeInvalidArgument},
		{"unavailable", status.Error(codes.Unavailable, "connection refused"), CodeUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "timeout"), CodeUnavailable},
		{"unknown", status.Error(codes.Unknown, "???"), CodeInternal},
		{"plain error", errors.New("not a status"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromGRPC(tt.err)
			if CodeOf(got) != tt.want {
				t.Errorf("FromGRPC() code = %q, want %q", CodeOf(got), tt.want)
			}
		})
	}
}

func TestFromGRPC_Nil(t *testing.T) {
	if FromGRPC(nil) != nil {
		t.Error("FromGRPC(nil) should be nil")
	}
}

func TestFromGRPC_UnavailableMessageIsStable(t *testing.T) {
	// Transport details (addresses, dial errors) must not reach clients.
	err := FromGRPC(status.Error(codes.Unavailable, "dial tcp 10.0.0.5:9090: connect: connection refused"))
	if MessageOf(err) != "backend unreachable" {
		t.Errorf("MessageOf() = %q, want %q", MessageOf(err), "backend unreachable")
	}
}
