package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/service"
	"github.com/eznproject/undangan/pkg/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	statsService service.StatsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(statsService service.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// Dashboard handles GET /api/v1/dashboard. Without event_id it aggregates
// across all events.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	result, err := h.statsService.Dashboard(c.Request.Context(), query.EventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}
