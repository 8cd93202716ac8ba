package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eznproject/undangan/pkg/middleware"
)

// Handlers groups every HTTP handler behind the router
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Event      *EventHandler
	Guest      *GuestHandler
	Invitation *InvitationHandler
	Scan       *ScanHandler
	Import     *ImportHandler
	Dashboard  *DashboardHandler
}

// RouterConfig contains configuration for route setup
type RouterConfig struct {
	JWTSecret string
	// ValidateSession rejects tokens whose server-side session is revoked
	ValidateSession func(c *gin.Context, sessionID string) error
	// Audit, when set, records mutating requests
	Audit *middleware.AuditLogger
}

// SetupRoutes wires all routes. The scan endpoint, token lookup, and RSVP
// are public; the invitation token is the guest's credential. Everything
// else under /api/v1 requires an admin JWT.
func SetupRoutes(router *gin.Engine, h *Handlers, cfg *RouterConfig) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api/v1")
	if cfg.Audit != nil {
		api.Use(middleware.AuditMiddleware(cfg.Audit))
	}

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/scan", h.Scan.Scan)
	api.GET("/invitations/token/:token", h.Invitation.LookupByToken)
	api.PUT("/invitations/:id/rsvp", h.Invitation.Rsvp)

	protected := api.Group("")
	protected.Use(middleware.JWTMiddleware(&middleware.JWTConfig{
		Secret:          cfg.JWTSecret,
		ValidateSession: cfg.ValidateSession,
	}))

	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/logout", h.Auth.Logout)

	protected.POST("/events", h.Event.Create)
	protected.GET("/events", h.Event.List)
	protected.GET("/events/:id", h.Event.GetDetail)
	protected.DELETE("/events/:id", h.Event.Delete)
	protected.GET("/events/:id/stats", h.Event.Stats)
	protected.GET("/events/:id/invitations", h.Invitation.ListByEvent)

	protected.GET("/guests", h.Guest.List)

	protected.POST("/invitations", h.Invitation.Create)
	protected.POST("/invitations/batch", h.Invitation.BatchInvite)
	protected.GET("/invitations/:id", h.Invitation.GetDetail)
	protected.DELETE("/invitations/:id", h.Invitation.Delete)
	protected.GET("/invitations/:id/qrcode", h.Invitation.QRCode)
	protected.POST("/qrcode", h.Invitation.GenerateQRCode)

	protected.POST("/import", h.Import.BulkImport)

	protected.GET("/dashboard", h.Dashboard.Dashboard)
}
