// ChatSystemSEP3 - Real-Time Chat Gateway
// Copyright 2026 Dan Weld (DanWeld)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/DanWeld/ChatSystemSEP3

// Package metrics exposes the gateway's Prometheus instrumentation:
// API latency, WebSocket connection and fan-out counters, and backend
// RPC durations.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Push transport metrics
	WSConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_connections_active",
			Help: "Current number of registered WebSocket connections",
		},
	)

	WSConnectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ws_connections_total",
			Help: "Total number of WebSocket connections accepted",
		},
	)

	WSEventsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ws_events_delivered_total",
			Help: "Events delivered to connection send queues, by kind",
		},
		[]string{"kind"},
	)

	WSEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ws_events_dropped_total",
			Help: "Events dropped because a recipient queue was full or closed",
		},
		[]string{"kind"},
	)

	WSGroupMembers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_group_memberships",
			Help: "Current number of (connection, group) membership pairs",
		},
	)

	// Backend RPC metrics
	BackendRPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_rpc_duration_seconds",
			Help:    "Backend gRPC call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)

	BackendRPCErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_rpc_errors_total",
			Help: "Backend gRPC call failures",
		},
		[]string{"service", "method", "code"},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordBackendRPC records one backend call with its outcome code.
func RecordBackendRPC(service, method, code string, duration time.Duration) {
	BackendRPCDuration.WithLabelValues(service, method).Observe(duration.Seconds())
	if code != "OK" {
		BackendRPCErrors.WithLabelValues(service, method, code).Inc()
	}
}
