package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/util"
	"go.uber.org/zap"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
	logger  *zap.Logger
}

// NewHealthHandler builds the health and service-info handlers. A nil db skips
// the store check.
func NewHealthHandler(db Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, timeout: constants.ServerConfig.HealthTimeout, logger: logger}
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// HealthCheck handles GET /api/health.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := healthResponse{
		Status:    "OK",
		Message:   constants.ServiceName + " is running",
		Timestamp: util.FormatTimestamp(util.NowUTC()),
		Database:  "ok",
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("Health check ping failed", zap.Error(err))
			resp.Status = "DEGRADED"
			resp.Message = constants.ServiceName + " cannot reach its database"
			resp.Database = "unavailable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ServiceInfo handles GET /.
func (h *HealthHandler) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": constants.ServiceName,
		"version": constants.ServiceVersion,
		"endpoints": gin.H{
			"akin":   "/api/akin",
			"health": "/api/health",
		},
	})
}
