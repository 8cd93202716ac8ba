package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/service"
	"github.com/eznproject/undangan/pkg/response"
)

// GuestHandler handles guest directory HTTP requests
type GuestHandler struct {
	guestService service.GuestService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// List handles GET /api/v1/guests. The event_id query excludes guests
// already invited to that event; search filters by name, whatsapp, or area.
func (h *GuestHandler) List(c *gin.Context) {
	var query dto.ListGuestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	result, err := h.guestService.List(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}
