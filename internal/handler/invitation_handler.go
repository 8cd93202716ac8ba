package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/service"
	"github.com/eznproject/undangan/pkg/response"
)

// InvitationHandler handles invitation HTTP requests
type InvitationHandler struct {
	invitationService service.InvitationService
	importService     service.ImportService
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(
	invitationService service.InvitationService,
	importService service.ImportService,
) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
		importService:     importService,
	}
}

// Create handles POST /api/v1/invitations
func (h *InvitationHandler) Create(c *gin.Context) {
	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if ok, msg := req.Validate(); !ok {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	result, err := h.invitationService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(result))
}

// BatchInvite handles POST /api/v1/invitations/batch
func (h *InvitationHandler) BatchInvite(c *gin.Context) {
	var req dto.BatchInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if ok, msg := req.Validate(); !ok {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	result, err := h.importService.InviteExisting(c.Request.Context(), req.EventID, req.GuestIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// ListByEvent handles GET /api/v1/events/:id/invitations
func (h *InvitationHandler) ListByEvent(c *gin.Context) {
	result, err := h.invitationService.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// GetDetail handles GET /api/v1/invitations/:id
func (h *InvitationHandler) GetDetail(c *gin.Context) {
	result, err := h.invitationService.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// LookupByToken handles GET /api/v1/invitations/token/:token. Public: the
// token is the guest's only credential.
func (h *InvitationHandler) LookupByToken(c *gin.Context) {
	result, err := h.invitationService.LookupByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// Rsvp handles PUT /api/v1/invitations/:id/rsvp. Public; guests respond
// from their invitation page.
func (h *InvitationHandler) Rsvp(c *gin.Context) {
	var req dto.RsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if ok, msg := req.Validate(); !ok {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	if err := h.invitationService.SetRsvp(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"message": "RSVP updated"}))
}

// Delete handles DELETE /api/v1/invitations/:id
func (h *InvitationHandler) Delete(c *gin.Context) {
	if err := h.invitationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Invitation deleted"}))
}

// QRCode handles GET /api/v1/invitations/:id/qrcode
func (h *InvitationHandler) QRCode(c *gin.Context) {
	result, err := h.invitationService.QRCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// GenerateQRCode handles POST /api/v1/qrcode
func (h *InvitationHandler) GenerateQRCode(c *gin.Context) {
	var req dto.QRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if ok, msg := req.Validate(); !ok {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	result, err := h.invitationService.QRCode(c.Request.Context(), req.InvitationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}
