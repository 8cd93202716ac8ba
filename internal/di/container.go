package di

import (
	"github.com/eznproject/undangan/internal/handler"
	"github.com/eznproject/undangan/internal/repository"
	"github.com/eznproject/undangan/internal/service"
	"github.com/eznproject/undangan/pkg/database"
	"github.com/eznproject/undangan/pkg/redis"
)

// Container holds all dependencies for the registry service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Cache *redis.Client

	// Repositories
	GuestRepo      repository.GuestRepository
	EventRepo      repository.EventRepository
	InvitationRepo repository.InvitationRepository
	AttendanceRepo repository.AttendanceRepository
	StatsRepo      repository.StatsRepository
	UserRepo       repository.UserRepository
	SessionRepo    repository.SessionRepository

	// Services
	GuestService      service.GuestService
	EventService      service.EventService
	InvitationService service.InvitationService
	CheckinService    service.CheckinService
	ImportService     service.ImportService
	StatsService      service.StatsService
	AuthService       service.AuthService

	// Handlers
	Handlers *handler.Handlers
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB               *database.PostgresDB
	Cache            *redis.Client
	AuthConfig       *service.AuthServiceConfig
	InvitationConfig *service.InvitationServiceConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Cache: cfg.Cache,
	}

	// Initialize repositories
	pool := cfg.DB.Pool()
	c.GuestRepo = repository.NewPostgresGuestRepository(pool)
	c.EventRepo = repository.NewPostgresEventRepository(pool)
	c.InvitationRepo = repository.NewPostgresInvitationRepository(pool)
	c.AttendanceRepo = repository.NewPostgresAttendanceRepository(pool)
	c.StatsRepo = repository.NewPostgresStatsRepository(pool)
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.SessionRepo = repository.NewRedisSessionRepository(cfg.Cache)

	// Initialize services
	c.GuestService = service.NewGuestService(c.GuestRepo)
	c.StatsService = service.NewStatsService(c.StatsRepo, c.AttendanceRepo, c.EventRepo, cfg.Cache)
	c.EventService = service.NewEventService(c.EventRepo, c.StatsService, c.AttendanceRepo)
	c.InvitationService = service.NewInvitationService(c.InvitationRepo, c.EventRepo, c.GuestService, cfg.InvitationConfig)
	c.CheckinService = service.NewCheckinService(c.InvitationRepo, c.AttendanceRepo)
	c.ImportService = service.NewImportService(c.EventRepo, c.GuestService, c.InvitationService)
	c.AuthService = service.NewAuthService(c.UserRepo, c.SessionRepo, cfg.AuthConfig)

	// Initialize handlers
	c.Handlers = &handler.Handlers{
		Health:     handler.NewHealthHandler(cfg.DB, cfg.Cache),
		Auth:       handler.NewAuthHandler(c.AuthService),
		Event:      handler.NewEventHandler(c.EventService, c.StatsService),
		Guest:      handler.NewGuestHandler(c.GuestService),
		Invitation: handler.NewInvitationHandler(c.InvitationService, c.ImportService),
		Scan:       handler.NewScanHandler(c.CheckinService),
		Import:     handler.NewImportHandler(c.ImportService),
		Dashboard:  handler.NewDashboardHandler(c.StatsService),
	}

	return c
}
