// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package api

import (
	"net/http"

	"github.com/DanWeld/ChatSystemSEP3/internal/errs"
)

var errAuthRequired = errs.New(errs.CodeUnauthenticated, "authentication required")

type healthStatus struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// Health reports gateway liveness and backend reachability. The gateway
// stays up when the backend is down, so a degraded report is still 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{Status: "ok", Backend: "ok"}
	if err := h.backend.Ping(r.Context()); err != nil {
		status.Status = "degraded"
		status.Backend = string(errs.CodeOf(err))
	}
	respondJSON(w, r, http.StatusOK, status)
}
