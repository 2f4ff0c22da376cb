// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/DanWeld/ChatSystemSEP3/internal/errs"
	"github.com/DanWeld/ChatSystemSEP3/internal/logging"
	"github.com/DanWeld/ChatSystemSEP3/internal/models"
)

// respondJSON writes the standard envelope with proper headers.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	resp := models.APIResponse{
		Status: "ok",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	}
	body, err := json.Marshal(resp)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("marshal response failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("write response failed")
	}
}

// respondError maps err onto the envelope's error form, hiding internal
// detail behind the coded taxonomy.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.CodeOf(err)
	status := errs.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: &models.APIError{
			Code:    string(code),
			Message: errs.MessageOf(err),
		},
	}
	//nolint:errcheck // nothing to do if the client is gone
	_ = json.NewEncoder(w).Encode(resp)
}

// decodeAndValidate parses the JSON body into req and runs the struct
// validators. Failures come back as invalid_argument.
func (h *Handler) decodeAndValidate(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errs.Wrap(errs.CodeInvalidArgument, "malformed JSON body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return errs.Newf(errs.CodeInvalidArgument, "field %q failed validation on %q", f.Field(), f.Tag())
		}
		return errs.Wrap(errs.CodeInvalidArgument, "validation failed", err)
	}
	return nil
}

// pathID parses a positive int64 URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Newf(errs.CodeInvalidArgument, "invalid %s", name)
	}
	return id, nil
}
