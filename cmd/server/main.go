// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package main is the entry point for the chat gateway.
//
// The gateway sits between web clients and the chat backend: it
// terminates WebSocket and REST traffic, authenticates requests with
// JWT, and relays chat operations to the backend over gRPC. Messages
// accepted by the backend are fanned out to connected room members in
// real time.
//
// Startup order:
//
//  1. Configuration: layered defaults, YAML file, environment (Koanf v2)
//  2. Logging: zerolog, JSON or console format
//  3. Backend: gRPC client connection (lazy; the gateway starts even
//     when the backend is down)
//  4. WebSocket hub: connection registry and group fan-out
//  5. HTTP server: Chi router with REST, push endpoint, and /metrics
//
// Shutdown on SIGINT/SIGTERM drains in-flight requests within the
// configured timeout and closes every WebSocket connection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanWeld/ChatSystemSEP3/internal/api"
	"github.com/DanWeld/ChatSystemSEP3/internal/auth"
	"github.com/DanWeld/ChatSystemSEP3/internal/backend"
	"github.com/DanWeld/ChatSystemSEP3/internal/config"
	"github.com/DanWeld/ChatSystemSEP3/internal/fanout"
	"github.com/DanWeld/ChatSystemSEP3/internal/logging"
	ws "github.com/DanWeld/ChatSystemSEP3/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("backend", cfg.Backend.Addr).
		Msg("Starting chat gateway")

	backendClient, err := backend.Dial(cfg.Backend)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create backend client")
	}
	defer func() {
		if err := backendClient.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing backend connection")
		}
	}()

	tokens, err := auth.NewManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize token manager")
	}

	registry := ws.NewRegistry()
	groups := ws.NewGroupTable()
	hub := ws.NewHub(cfg.WebSocket, registry, groups)

	dispatcher := fanout.New(backendClient, hub)
	hub.SetSender(dispatcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		if err := hub.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("WebSocket hub exited")
		}
	}()

	handler := api.NewHandler(backendClient, dispatcher, hub, tokens)
	authmw := auth.NewMiddleware(tokens, auth.NewTokenSource("/api/v1/ws"))
	router := api.NewRouter(cfg, handler, authmw)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		// WriteTimeout stays unset: it would sever long-lived
		// WebSocket connections. REST responses are bounded by the
		// backend call timeout instead.
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serverErr <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP shutdown did not complete cleanly")
	}

	// Stop the hub after the listener so no new connections register
	// during teardown.
	cancel()
	<-hubDone

	logging.Info().Msg("Chat gateway stopped")
}
