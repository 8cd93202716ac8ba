package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/pkg/database"
	"github.com/eznproject/undangan/pkg/redis"
	"github.com/eznproject/undangan/pkg/response"
)

// HealthHandler reports liveness of the server and its dependencies
type HealthHandler struct {
	db      *database.PostgresDB
	cache   *redis.Client
	started time.Time
}

// NewHealthHandler creates a new health handler. db and cache may be nil;
// absent dependencies are reported as skipped.
func NewHealthHandler(db *database.PostgresDB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:      db,
		cache:   cache,
		started: time.Now(),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	checks := map[string]string{}
	healthy := true

	if h.db != nil {
		if err := h.db.HealthCheck(ctx); err != nil {
			checks["database"] = "down"
			healthy = false
		} else {
			checks["database"] = "up"
		}
	} else {
		checks["database"] = "skipped"
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(ctx); err != nil {
			checks["redis"] = "down"
			healthy = false
		} else {
			checks["redis"] = "up"
		}
	} else {
		checks["redis"] = "skipped"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.ErrorWithDetails(
			response.ErrCodeServiceUnavailable, "Dependency check failed", checks))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
		"checks": checks,
	}))
}
