package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/service"
	"github.com/eznproject/undangan/pkg/response"
)

// ImportHandler handles bulk guest import HTTP requests
type ImportHandler struct {
	importService service.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// BulkImport handles POST /api/v1/import. The response reports every row's
// outcome; the batch never partially rolls back.
func (h *ImportHandler) BulkImport(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if ok, msg := req.Validate(); !ok {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	result, err := h.importService.BulkImport(c.Request.Context(), req.EventID, req.Rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}
