package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the health probe
type SystemHandler struct {
	BaseHandler
	appName string
	db      Pinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(appName string, db Pinger) *SystemHandler {
	return &SystemHandler{appName: appName, db: db}
}

// RegisterRoutes registers the health route
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":  status,
		"service": h.appName,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
