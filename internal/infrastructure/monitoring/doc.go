/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the backend
service, tracking HTTP requests, command invocations, IPC traffic and
shortcut notifications.

# Features

- HTTP request metrics (latency, throughput, size)
- Command metrics (duration, outcome code)
- WebSocket connection and message metrics
- Shortcut event counters
- Uptime

Each Metrics value owns its own registry, so several servers (or tests) can
live in one process.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "open_file")
	// ... run the command ...
	timer.Stop("ok")
*/
package monitoring
