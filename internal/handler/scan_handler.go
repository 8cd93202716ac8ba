package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/service"
	"github.com/eznproject/undangan/pkg/response"
)

// ScanHandler handles check-in scan HTTP requests
type ScanHandler struct {
	checkinService service.CheckinService
}

// NewScanHandler creates a new scan handler
func NewScanHandler(checkinService service.CheckinService) *ScanHandler {
	return &ScanHandler{checkinService: checkinService}
}

// Scan handles POST /api/v1/scan. A repeated scan returns 200 with
// already_checked_in set; only an unknown token is an error.
func (h *ScanHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if ok, msg := req.Validate(); !ok {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	result, err := h.checkinService.CheckIn(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}
