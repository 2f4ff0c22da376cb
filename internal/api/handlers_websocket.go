// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package api

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"

	"github.com/DanWeld/ChatSystemSEP3/internal/auth"
	"github.com/DanWeld/ChatSystemSEP3/internal/logging"
	"github.com/DanWeld/ChatSystemSEP3/internal/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Cross-origin policy is enforced by the CORS middleware and the
	// token requirement; the upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocket upgrades the connection and hands it to the hub. The
// authentication middleware has already run; an unauthenticated request
// never reaches this handler.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, r, errAuthRequired)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its own error response.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(h.hub, conn, id.UserID, id.Username)
	h.hub.Register <- client
	client.Start()
}
