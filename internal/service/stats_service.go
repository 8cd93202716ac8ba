package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/repository"
	"github.com/eznproject/undangan/pkg/logger"
	"github.com/eznproject/undangan/pkg/redis"
)

const (
	dashboardCacheTTL    = 10 * time.Second
	recentCheckinsLimit  = 10
	dashboardCachePrefix = "dashboard:"
)

// StatsService computes read-side aggregates over the registry
type StatsService interface {
	// EventStats returns the aggregate for one event.
	// Returns domain.ErrEventNotFound for unknown events.
	EventStats(ctx context.Context, eventID string) (*dto.EventStatsResponse, error)
	// Dashboard returns stats plus the most recent check-ins. An empty
	// eventID aggregates across all events. Results are briefly cached.
	Dashboard(ctx context.Context, eventID string) (*dto.DashboardResponse, error)
}

// statsService implements StatsService
type statsService struct {
	statsRepo      repository.StatsRepository
	attendanceRepo repository.AttendanceRepository
	eventRepo      repository.EventRepository
	cache          *redis.Client // optional
}

// NewStatsService creates a new StatsService. cache may be nil, which
// disables dashboard caching.
func NewStatsService(
	statsRepo repository.StatsRepository,
	attendanceRepo repository.AttendanceRepository,
	eventRepo repository.EventRepository,
	cache *redis.Client,
) StatsService {
	return &statsService{
		statsRepo:      statsRepo,
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		cache:          cache,
	}
}

// EventStats returns the aggregate for one event
func (s *statsService) EventStats(ctx context.Context, eventID string) (*dto.EventStatsResponse, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.EventStats(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return toStatsResponse(stats), nil
}

// Dashboard returns stats plus the most recent check-ins
func (s *statsService) Dashboard(ctx context.Context, eventID string) (*dto.DashboardResponse, error) {
	cacheKey := dashboardCachePrefix + eventID
	if eventID == "" {
		cacheKey = dashboardCachePrefix + "all"
	}

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			cached := &dto.DashboardResponse{}
			if err := json.Unmarshal([]byte(raw), cached); err == nil {
				return cached, nil
			}
		}
	}

	if eventID != "" {
		if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
			return nil, err
		}
	}

	stats, err := s.statsRepo.EventStats(ctx, eventID)
	if err != nil {
		return nil, err
	}
	recent, err := s.attendanceRepo.RecentCheckins(ctx, eventID, recentCheckinsLimit)
	if err != nil {
		return nil, err
	}

	result := &dto.DashboardResponse{
		Stats:          *toStatsResponse(stats),
		RecentCheckins: toRecentCheckinEntries(recent),
	}

	if s.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				logger.WarnCtx(ctx, "failed to cache dashboard", zap.Error(err))
			}
		}
	}
	return result, nil
}

// toStatsResponse derives the attendance rate as a percentage with one
// decimal: 4 of 10 checked in is 40.0, and an empty event is 0.
func toStatsResponse(stats *repository.EventStats) *dto.EventStatsResponse {
	rate := 0.0
	if stats.TotalGuests > 0 {
		rate = math.Round(float64(stats.CheckedInGuests)/float64(stats.TotalGuests)*1000) / 10
	}
	return &dto.EventStatsResponse{
		TotalGuests:     stats.TotalGuests,
		CheckedInGuests: stats.CheckedInGuests,
		PendingGuests:   stats.TotalGuests - stats.CheckedInGuests,
		RsvpConfirmed:   stats.RsvpConfirmed,
		RsvpPending:     stats.RsvpPending,
		RsvpRejected:    stats.RsvpRejected,
		AttendanceRate:  rate,
	}
}

func toRecentCheckinEntries(checkins []*repository.RecentCheckin) []dto.RecentCheckinEntry {
	entries := make([]dto.RecentCheckinEntry, 0, len(checkins))
	for _, c := range checkins {
		entries = append(entries, dto.RecentCheckinEntry{
			InvitationID: c.InvitationID,
			GuestName:    c.GuestName,
			EventTitle:   c.EventTitle,
			CheckinTime:  c.CheckinTime.Format(time.RFC3339),
		})
	}
	return entries
}
