package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workoflow/hrms-api/internal/database"
)

var startTime = time.Now()

type HealthHandler struct {
	db database.Database
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
	Uptime    string            `json:"uptime"`
}

type ReadinessStatus struct {
	Ready    bool              `json:"ready"`
	Services map[string]string `json:"services"`
}

func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Health reports overall service health including database connectivity.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"database": h.checkDatabase(c.Request.Context()),
	}

	status := "healthy"
	statusCode := http.StatusOK
	if services["database"] != "healthy" {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Services:  services,
		Uptime:    time.Since(startTime).String(),
	})
}

// Readiness checks that the service can reach its dependencies.
func (h *HealthHandler) Readiness(c *gin.Context) {
	services := map[string]string{
		"database": h.checkDatabase(c.Request.Context()),
	}

	ready := services["database"] == "healthy"
	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, ReadinessStatus{
		Ready:    ready,
		Services: services,
	})
}

// Liveness answers as long as the process is running.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) string {
	if h.db == nil {
		return "not_configured"
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.db.Ping(pingCtx); err != nil {
		return "unhealthy"
	}

	return "healthy"
}
