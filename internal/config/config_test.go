// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// validSecret satisfies the minimum HS256 key length.
const validSecret = "0123456789abcdef0123456789abcdef"

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = validSecret
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults with secret", func(c *Config) {}, ""},
		{"short jwt secret", func(c *Config) { c.Security.JWTSecret = "tooshort" }, "jwt_secret"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"empty backend addr", func(c *Config) { c.Backend.Addr = "  " }, "backend.addr"},
		{"zero call timeout", func(c *Config) { c.Backend.CallTimeout = 0 }, "call_timeout"},
		{"empty issuer", func(c *Config) { c.Security.JWTIssuer = "" }, "jwt_issuer"},
		{"empty audience", func(c *Config) { c.Security.JWTAudience = "" }, "jwt_audience"},
		{"pong wait below write wait", func(c *Config) {
			c.WebSocket.PongWait = 5 * time.Second
			c.WebSocket.WriteWait = 10 * time.Second
		}, "pong_wait"},
		{"zero send buffer", func(c *Config) { c.WebSocket.SendBuffer = 0 }, "send_buffer"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Backend.Addr = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"server.port", "backend.addr"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"CHATGW_SERVER__PORT", "server.port"},
		{"CHATGW_SECURITY__JWT_SECRET", "security.jwt_secret"},
		{"CHATGW_BACKEND__CALL_TIMEOUT", "backend.call_timeout"},
		{"CHATGW_WEBSOCKET__SEND_BUFFER", "websocket.send_buffer"},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9001
security:
  jwt_secret: "` + validSecret + `"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("CHATGW_SERVER__PORT", "9002")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 9002 {
		t.Errorf("Server.Port = %d, want env override 9002", cfg.Server.Port)
	}
	if cfg.Security.JWTSecret != validSecret {
		t.Error("file-provided jwt_secret not applied")
	}
	// Untouched settings keep their defaults.
	if cfg.Backend.Addr != "127.0.0.1:9090" {
		t.Errorf("Backend.Addr = %q, want default", cfg.Backend.Addr)
	}
}

func TestLoad_CORSOriginsFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
security:
  jwt_secret: "` + validSecret + `"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("CHATGW_SECURITY__CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("Load() without a jwt secret should fail validation")
	}
}

func TestServerConfigAddr(t *testing.T) {
	sc := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := sc.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}
