// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DanWeld/ChatSystemSEP3/internal/auth"
	"github.com/DanWeld/ChatSystemSEP3/internal/config"
	"github.com/DanWeld/ChatSystemSEP3/internal/middleware"
)

// Router wires the handler set into a Chi mux.
type Router struct {
	handler *Handler
	authmw  *auth.Middleware
	cfg     *config.Config
}

// NewRouter builds the router.
func NewRouter(cfg *config.Config, handler *Handler, authmw *auth.Middleware) *Router {
	return &Router{handler: handler, authmw: authmw, cfg: cfg}
}

// Setup configures all HTTP routes.
func (rt *Router) Setup() http.Handler {
	sec := rt.cfg.Security

	r := chi.NewRouter()

	// Global stack, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   sec.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	// Prometheus scrape endpoint stays outside the API stack.
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Get("/", rt.handler.Health)
	})

	// Auth endpoints carry a stricter rate limit against brute force.
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(httprate.LimitByIP(sec.AuthRateLimitReqs, sec.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)

		r.Post("/register", rt.handler.Register)
		r.Post("/login", rt.handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(rt.authmw.Authenticate)
			r.Get("/me", rt.handler.Me)
		})
	})

	// Everything below requires a valid token. The WebSocket endpoint
	// shares the stack; its query-parameter token fallback is handled
	// inside the extraction rules, not here.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(sec.RateLimitReqs, sec.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)
		r.Use(rt.authmw.Authenticate)

		r.Get("/ws", rt.handler.WebSocket)

		r.Route("/chatrooms", func(r chi.Router) {
			r.Get("/", rt.handler.ListChatRooms)
			r.Post("/", rt.handler.CreateChatRoom)

			r.Route("/{id}/messages", func(r chi.Router) {
				r.Get("/", rt.handler.GetMessages)
				r.Post("/", rt.handler.SendMessage)
				r.Get("/search", rt.handler.SearchMessages)
				r.Put("/{mid}", rt.handler.EditMessage)
				r.Delete("/{mid}", rt.handler.DeleteMessage)
			})
		})

		r.Route("/friends", func(r chi.Router) {
			r.Get("/", rt.handler.ListFriends)
			r.Get("/requests", rt.handler.ListFriendRequests)
			r.Post("/requests", rt.handler.SendFriendRequest)
			r.Post("/requests/{id}", rt.handler.RespondFriendRequest)
			r.Delete("/{friendId}", rt.handler.RemoveFriend)
		})

		r.Route("/groupchats", func(r chi.Router) {
			r.Post("/", rt.handler.CreateGroupChat)
			r.Get("/my-chats", rt.handler.MyChatRooms)
			r.Get("/private/{uid}", rt.handler.PrivateChatRoom)
			r.Get("/{id}/members", rt.handler.ListMembers)
			r.Post("/{id}/members", rt.handler.AddMember)
			r.Delete("/{id}/members/{uid}", rt.handler.RemoveMember)
			r.Post("/{id}/members/{uid}/promote", rt.handler.PromoteMember)
		})
	})

	return r
}
