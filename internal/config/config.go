// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package config loads gateway configuration from layered sources:
// built-in defaults, an optional YAML file, then environment variables.
package config

import (
	"time"
)

// Config is the root configuration for the gateway.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Backend   BackendConfig   `koanf:"backend"`
	Security  SecurityConfig  `koanf:"security"`
	WebSocket WebSocketConfig `koanf:"websocket"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// BackendConfig holds the gRPC backend connection settings.
type BackendConfig struct {
	// Addr is the host:port of the backend gRPC server.
	Addr string `koanf:"addr"`

	// DialTimeout bounds the initial connection attempt.
	DialTimeout time.Duration `koanf:"dial_timeout"`

	// CallTimeout bounds each unary RPC.
	CallTimeout time.Duration `koanf:"call_timeout"`
}

// SecurityConfig holds authentication and rate limit settings.
type SecurityConfig struct {
	// JWTSecret is the HS256 signing key. Minimum 32 bytes.
	JWTSecret string `koanf:"jwt_secret"`

	// JWTIssuer and JWTAudience are matched exactly during validation.
	JWTIssuer   string `koanf:"jwt_issuer"`
	JWTAudience string `koanf:"jwt_audience"`

	// TokenTTL is the lifetime of tokens minted at login/register.
	TokenTTL time.Duration `koanf:"token_ttl"`

	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs per RateLimitWindow per client IP, general API.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// AuthRateLimitReqs is the stricter limit on /auth endpoints.
	AuthRateLimitReqs int `koanf:"auth_rate_limit_reqs"`
}

// WebSocketConfig holds push-transport tuning knobs.
type WebSocketConfig struct {
	// WriteWait bounds a single frame write.
	WriteWait time.Duration `koanf:"write_wait"`

	// PongWait is the read deadline; pings go out at 9/10 of this.
	PongWait time.Duration `koanf:"pong_wait"`

	// MaxMessageSize caps inbound frames in bytes.
	MaxMessageSize int64 `koanf:"max_message_size"`

	// SendBuffer is the per-connection outbound queue depth. Events
	// beyond it are dropped rather than stalling the fan-out.
	SendBuffer int `koanf:"send_buffer"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns the built-in defaults, applied before the file
// and environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Backend: BackendConfig{
			Addr:        "127.0.0.1:9090",
			DialTimeout: 10 * time.Second,
			CallTimeout: 5 * time.Second,
		},
		Security: SecurityConfig{
			JWTSecret:         "",
			JWTIssuer:         "chatsystem-gateway",
			JWTAudience:       "chatsystem-clients",
			TokenTTL:          24 * time.Hour,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			AuthRateLimitReqs: 10,
		},
		WebSocket: WebSocketConfig{
			WriteWait:      10 * time.Second,
			PongWait:       60 * time.Second,
			MaxMessageSize: 8192,
			SendBuffer:     64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
