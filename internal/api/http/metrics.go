package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsSummary provides high-level metrics for the web view
type MetricsSummary struct {
	Timestamp         time.Time `json:"timestamp"`
	TotalRequests     int64     `json:"total_requests"`
	ErrorRate         float64   `json:"error_rate"`
	TotalCommands     int64     `json:"total_commands"`
	CommandErrorRate  float64   `json:"command_error_rate"`
	ActiveConnections int64     `json:"active_connections"`
	UptimeSeconds     float64   `json:"uptime_seconds"`
}

// MetricsJSON returns the metrics summary as JSON. The Prometheus
// exposition lives at /metrics.
func (h *Handlers) MetricsJSON(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metrics disabled"})
		return
	}

	snap := h.metrics.Snapshot()
	c.JSON(http.StatusOK, MetricsSummary{
		Timestamp:         time.Now(),
		TotalRequests:     snap.TotalRequests,
		ErrorRate:         ratio(snap.TotalErrors, snap.TotalRequests),
		TotalCommands:     snap.TotalCommands,
		CommandErrorRate:  ratio(snap.FailedCommands, snap.TotalCommands),
		ActiveConnections: snap.ActiveConnections,
		UptimeSeconds:     snap.UptimeSeconds,
	})
}

func ratio(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
