// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package errs defines the coded error taxonomy shared by the REST
// handlers, the push transport, and the backend RPC client.
//
// Every error that crosses a package boundary is an *Error carrying one
// of the Code values below. Handlers map the code to an HTTP status;
// the push transport maps it to an error frame. Wrapped causes stay
// reachable through errors.Unwrap for logging.
package errs

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code classifies an error for transport mapping.
type Code string

const (
	CodeUnauthenticated  Code = "unauthenticated"
	CodePermissionDenied Code = "permission_denied"
	CodeNotFound         Code = "not_found"
	CodeAlreadyExists    Code = "already_exists"
	CodeInvalidArgument  Code = "invalid_argument"
	CodeUnavailable      Code = "unavailable"
	CodeInternal         Code = "internal"
)

// Error is a classified error. Message is safe to return to clients;
// cause is for logs only.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same code, so sentinel comparison
// works: errors.Is(err, errs.New(errs.CodeNotFound, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New returns a classified error with a client-safe message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with formatting.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. The cause is preserved for
// errors.Is/As and logging but never serialized to clients.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// unclassified errors. nil maps to the zero Code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf returns the client-safe message for err. Unclassified
// errors get a generic message so internals never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// HTTPStatus maps a code to its HTTP response status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeUnauthenticated:
		return 401
	case CodePermissionDenied:
		return 403
	case CodeNotFound:
		return 404
	case CodeAlreadyExists:
		return 409
	case CodeInvalidArgument:
		return 400
	case CodeUnavailable:
		return 503
	default:
		return 500
	}
}

// FromGRPC converts a gRPC client error into the internal taxonomy.
// codes.Unavailable (and deadline expiry) become CodeUnavailable so
// callers can distinguish "backend unreachable" from a backend verdict.
func FromGRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return Wrap(CodeInternal, "backend error", err)
	}
	switch st.Code() {
	case codes.OK:
		return nil
	case codes.Unauthenticated:
		return Wrap(CodeUnauthenticated, st.Message(), err)
	case codes.PermissionDenied:
		return Wrap(CodePermissionDenied, st.Message(), err)
	case codes.NotFound:
		return Wrap(CodeNotFound, st.Message(), err)
	case codes.AlreadyExists:
		return Wrap(CodeAlreadyExists, st.Message(), err)
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return Wrap(CodeInvalidArgument, st.Message(), err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return Wrap(CodeUnavailable, "backend unreachable", err)
	default:
		return Wrap(CodeInternal, "backend error", err)
	}
}
