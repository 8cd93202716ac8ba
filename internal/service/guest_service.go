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

// GuestService defines guest directory operations
type GuestService interface {
	// FindOrCreate returns the guest holding the whatsapp number, creating it
	// if unseen. Existing non-empty fields are never overwritten; blank
	// address/area fields are filled from the input.
	FindOrCreate(ctx context.Context, name, whatsapp, address, area string) (*domain.Guest, error)
	// List returns the guest directory, optionally excluding guests already
	// invited to an event and filtering by a substring search
	List(ctx context.Context, query *dto.ListGuestsQuery) (*dto.ListGuestsResponse, error)
}

// guestService implements GuestService
type guestService struct {
	guestRepo repository.GuestRepository
}

// NewGuestService creates a new GuestService
func NewGuestService(guestRepo repository.GuestRepository) GuestService {
	return &guestService{guestRepo: guestRepo}
}

// FindOrCreate returns the guest with the given contact, creating it if needed
func (s *guestService) FindOrCreate(ctx context.Context, name, whatsapp, address, area string) (*domain.Guest, error) {
	whatsapp = domain.NormalizeContact(whatsapp)

	existing, err := s.guestRepo.GetByWhatsapp(ctx, whatsapp)
	if err == nil {
		return s.fillMissing(ctx, existing, address, area), nil
	}
	if !errors.Is(err, domain.ErrGuestNotFound) {
		return nil, err
	}

	guest, err := domain.NewGuest(name, whatsapp, address, area)
	if err != nil {
		return nil, err
	}

	err = s.guestRepo.Create(ctx, guest)
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, domain.ErrGuestContactExists) {
		return nil, err
	}

	// Lost a concurrent insert race: the winner's row is authoritative.
	winner, err := s.guestRepo.GetByWhatsapp(ctx, whatsapp)
	if err != nil {
		return nil, err
	}
	return s.fillMissing(ctx, winner, address, area), nil
}

// fillMissing persists blank-field merges, tolerating update failures since
// the lookup result is already correct
func (s *guestService) fillMissing(ctx context.Context, guest *domain.Guest, address, area string) *domain.Guest {
	if guest.FillMissing(address, area) {
		if err := s.guestRepo.Update(ctx, guest); err != nil {
			logger.WarnCtx(ctx, "failed to merge guest fields", zap.String("guest_id", guest.ID), zap.Error(err))
		}
	}
	return guest
}

// List returns matching guests, newest first
func (s *guestService) List(ctx context.Context, query *dto.ListGuestsQuery) (*dto.ListGuestsResponse, error) {
	guests, err := s.guestRepo.Find(ctx, query.EventID, query.Search)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GuestResponse, 0, len(guests))
	for _, guest := range guests {
		responses = append(responses, *toGuestResponse(guest))
	}
	return &dto.ListGuestsResponse{
		Guests:     responses,
		TotalCount: len(responses),
	}, nil
}

func toGuestResponse(guest *domain.Guest) *dto.GuestResponse {
	return &dto.GuestResponse{
		ID:        guest.ID,
		Name:      guest.Name,
		Whatsapp:  guest.Whatsapp,
		Address:   guest.Address,
		Area:      guest.Area,
		CreatedAt: guest.CreatedAt.Format(time.RFC3339),
	}
}
