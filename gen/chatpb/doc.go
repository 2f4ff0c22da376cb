// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package chatpb contains wire-compatible Go bindings for proto/chat.proto.
//
// The backend system of record owns the canonical schema; this package is a
// hand-maintained mirror in the legacy protoc-gen-go message layout, where
// the `protobuf` struct tags drive the runtime descriptor. Keeping the
// bindings in-tree means the gateway builds without the protoc toolchain
// installed.
//
// Rules when editing:
//   - Field numbers must match proto/chat.proto exactly. The wire format
//     depends on the tags, not on the field order in the struct.
//   - Never reuse a removed field number.
//   - Responses the backend returns (Message in particular) are relayed to
//     clients verbatim; do not add gateway-computed fields here.
package chatpb
