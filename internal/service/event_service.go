package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/eznproject/undangan/internal/domain"
	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/repository"
	"github.com/eznproject/undangan/pkg/logger"
)

// EventService defines event catalog operations
type EventService interface {
	// Create creates a new event
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	// List retrieves all events, newest first
	List(ctx context.Context) (*dto.ListEventsResponse, error)
	// GetDetail retrieves an event with its stats and recent check-ins
	GetDetail(ctx context.Context, id string) (*dto.EventDetailResponse, error)
	// Delete removes an event and cascades its invitations and attendance.
	// Irreversible; guests are untouched.
	Delete(ctx context.Context, id string) error
}

// eventService implements EventService
type eventService struct {
	eventRepo      repository.EventRepository
	statsService   StatsService
	attendanceRepo repository.AttendanceRepository
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo repository.EventRepository,
	statsService StatsService,
	attendanceRepo repository.AttendanceRepository,
) EventService {
	return &eventService{
		eventRepo:      eventRepo,
		statsService:   statsService,
		attendanceRepo: attendanceRepo,
	}
}

// Create creates a new event
func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	event, err := domain.NewEvent(req.Title, req.Date, req.Time, req.Location, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "event created", zap.String("event_id", event.ID), zap.String("title", event.Title))
	return toEventResponse(event), nil
}

// List retrieves all events, newest first
func (s *eventService) List(ctx context.Context) (*dto.ListEventsResponse, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, *toEventResponse(event))
	}
	return &dto.ListEventsResponse{
		Events:     responses,
		TotalCount: len(responses),
	}, nil
}

// GetDetail retrieves an event with its stats and recent check-ins
func (s *eventService) GetDetail(ctx context.Context, id string) (*dto.EventDetailResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsService.EventStats(ctx, id)
	if err != nil {
		return nil, err
	}

	recent, err := s.attendanceRepo.RecentCheckins(ctx, id, recentCheckinsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.EventDetailResponse{
		Event:          *toEventResponse(event),
		Stats:          *stats,
		RecentCheckins: toRecentCheckinEntries(recent),
	}, nil
}

// Delete removes an event and everything scoped to it
func (s *eventService) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "event deleted", zap.String("event_id", id))
	return nil
}

func toEventResponse(event *domain.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Date:        event.Date,
		Time:        event.Time,
		Location:    event.Location,
		Description: event.Description,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
	}
}
