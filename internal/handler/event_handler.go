package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/service"
	"github.com/eznproject/undangan/pkg/response"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	eventService service.EventService
	statsService service.StatsService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventService, statsService service.StatsService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		statsService: statsService,
	}
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if ok, msg := req.Validate(); !ok {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	result, err := h.eventService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(result))
}

// List handles GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	result, err := h.eventService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// GetDetail handles GET /api/v1/events/:id
func (h *EventHandler) GetDetail(c *gin.Context) {
	result, err := h.eventService.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// Stats handles GET /api/v1/events/:id/stats
func (h *EventHandler) Stats(c *gin.Context) {
	result, err := h.statsService.EventStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Event deleted"}))
}
