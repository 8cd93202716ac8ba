package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/internal/domain"
	"github.com/eznproject/undangan/internal/service"
	"github.com/eznproject/undangan/pkg/logger"
	"github.com/eznproject/undangan/pkg/response"
	"go.uber.org/zap"
)

// respondError converts domain errors to HTTP responses
func respondError(c *gin.Context, err error) {
	var resp *response.Response

	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		resp = response.InvalidToken("")
	case errors.Is(err, domain.ErrDuplicateInvitation):
		resp = response.DuplicateInvitation("")
	case errors.Is(err, domain.ErrTokenConflict):
		resp = response.Error(response.ErrCodeTokenConflict, "Token collision, please retry")
	case errors.Is(err, domain.ErrGuestNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		resp = response.NotFound(err.Error())
	case errors.Is(err, domain.ErrInvalidRsvpStatus):
		resp = response.BadRequest(err.Error())
	case errors.Is(err, domain.ErrGuestContactExists):
		resp = response.Conflict(err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		resp = response.Unauthorized(err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		resp = response.Unauthorized("Session is no longer valid")
	default:
		logger.ErrorCtx(c.Request.Context(), "unhandled service error", zap.Error(err))
		resp = response.InternalError("")
	}

	c.JSON(response.GetHTTPStatus(resp.Error.Code), resp)
}
