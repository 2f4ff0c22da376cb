// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package config

import (
	"errors"
	"fmt"
	"strings"
)

// minJWTSecretLen is the minimum HS256 key length in bytes.
const minJWTSecretLen = 32

// Validate checks the configuration for values that would make the
// gateway unsafe or unable to start. It returns all problems at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range 1-65535", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		problems = append(problems, "server.shutdown_timeout must be positive")
	}

	if strings.TrimSpace(c.Backend.Addr) == "" {
		problems = append(problems, "backend.addr is required")
	}
	if c.Backend.CallTimeout <= 0 {
		problems = append(problems, "backend.call_timeout must be positive")
	}

	if len(c.Security.JWTSecret) < minJWTSecretLen {
		problems = append(problems, fmt.Sprintf("security.jwt_secret must be at least %d bytes", minJWTSecretLen))
	}
	if c.Security.JWTIssuer == "" {
		problems = append(problems, "security.jwt_issuer is required")
	}
	if c.Security.JWTAudience == "" {
		problems = append(problems, "security.jwt_audience is required")
	}
	if c.Security.TokenTTL <= 0 {
		problems = append(problems, "security.token_ttl must be positive")
	}

	if c.WebSocket.WriteWait <= 0 {
		problems = append(problems, "websocket.write_wait must be positive")
	}
	if c.WebSocket.PongWait <= c.WebSocket.WriteWait {
		problems = append(problems, "websocket.pong_wait must exceed websocket.write_wait")
	}
	if c.WebSocket.SendBuffer < 1 {
		problems = append(problems, "websocket.send_buffer must be at least 1")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q must be json or console", c.Logging.Format))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Addr returns the HTTP listen address as host:port.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
