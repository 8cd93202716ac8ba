package service

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/eznproject/undangan/internal/domain"
	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/repository"
	"github.com/eznproject/undangan/pkg/logger"
	"github.com/eznproject/undangan/pkg/token"
)

const qrImageSize = 256

// InvitationServiceConfig contains configuration for the invitation service
type InvitationServiceConfig struct {
	// BaseURL is the public site prefix of invitation links
	BaseURL string
}

// InvitationService defines invitation ledger operations
type InvitationService interface {
	// Create looks up or creates the guest by whatsapp, then invites them.
	// Returns domain.ErrDuplicateInvitation when the guest is already
	// invited to the event.
	Create(ctx context.Context, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error)
	// Invite binds an existing guest to an event with a fresh token.
	// Returns domain.ErrDuplicateInvitation for repeat pairs and
	// domain.ErrTokenConflict on a token collision (retryable).
	Invite(ctx context.Context, eventID, guestID string) (*domain.Invitation, error)
	// GetDetail retrieves an invitation with guest, event, and attendance
	GetDetail(ctx context.Context, id string) (*dto.InvitationResponse, error)
	// LookupByToken retrieves an invitation by its token. Public: the token
	// itself is the capability.
	LookupByToken(ctx context.Context, tok string) (*dto.InvitationResponse, error)
	// ListByEvent retrieves an event's invitations, newest first
	ListByEvent(ctx context.Context, eventID string) (*dto.ListInvitationsResponse, error)
	// SetRsvp overwrites the RSVP status. Re-submission is allowed; guests
	// change their minds.
	SetRsvp(ctx context.Context, id, status string) error
	// Delete removes an invitation and its attendance, leaving the guest
	Delete(ctx context.Context, id string) error
	// QRCode renders the invitation URL as a base64 PNG data URL
	QRCode(ctx context.Context, invitationID string) (*dto.QRCodeResponse, error)
}

// invitationService implements InvitationService
type invitationService struct {
	invitationRepo repository.InvitationRepository
	eventRepo      repository.EventRepository
	guestService   GuestService
	config         *InvitationServiceConfig
}

// NewInvitationService creates a new InvitationService
func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	eventRepo repository.EventRepository,
	guestService GuestService,
	config *InvitationServiceConfig,
) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		eventRepo:      eventRepo,
		guestService:   guestService,
		config:         config,
	}
}

// Create looks up or creates the guest, then invites them
func (s *invitationService) Create(ctx context.Context, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	if _, err := s.eventRepo.GetByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	guest, err := s.guestService.FindOrCreate(ctx, req.Name, req.Whatsapp, req.Address, req.Area)
	if err != nil {
		return nil, err
	}

	invitation, err := s.Invite(ctx, req.EventID, guest.ID)
	if err != nil {
		return nil, err
	}

	return s.toInvitationResponse(&repository.InvitationRecord{
		Invitation: invitation,
		Guest:      guest,
	}), nil
}

// Invite binds an existing guest to an event with a fresh token. The unique
// constraints are the duplicate guard; there is no prior existence check.
func (s *invitationService) Invite(ctx context.Context, eventID, guestID string) (*domain.Invitation, error) {
	tok, err := token.New()
	if err != nil {
		return nil, err
	}

	invitation, err := domain.NewInvitation(eventID, guestID, tok)
	if err != nil {
		return nil, err
	}

	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "invitation created",
		zap.String("invitation_id", invitation.ID),
		zap.String("event_id", eventID),
		zap.String("guest_id", guestID),
	)
	return invitation, nil
}

// GetDetail retrieves an invitation with its joined rows
func (s *invitationService) GetDetail(ctx context.Context, id string) (*dto.InvitationResponse, error) {
	record, err := s.invitationRepo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toInvitationResponse(record), nil
}

// LookupByToken retrieves an invitation by its token
func (s *invitationService) LookupByToken(ctx context.Context, tok string) (*dto.InvitationResponse, error) {
	record, err := s.invitationRepo.GetDetailByToken(ctx, tok)
	if err != nil {
		return nil, err
	}
	return s.toInvitationResponse(record), nil
}

// ListByEvent retrieves an event's invitations, newest first
func (s *invitationService) ListByEvent(ctx context.Context, eventID string) (*dto.ListInvitationsResponse, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	records, err := s.invitationRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.InvitationResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, *s.toInvitationResponse(record))
	}
	return &dto.ListInvitationsResponse{
		Invitations: responses,
		TotalCount:  len(responses),
	}, nil
}

// SetRsvp overwrites the RSVP status
func (s *invitationService) SetRsvp(ctx context.Context, id, status string) error {
	if !domain.ValidRsvpStatus(status) {
		return domain.ErrInvalidRsvpStatus
	}
	return s.invitationRepo.UpdateRsvp(ctx, id, status)
}

// Delete removes an invitation and its attendance, leaving the guest
func (s *invitationService) Delete(ctx context.Context, id string) error {
	return s.invitationRepo.Delete(ctx, id)
}

// QRCode renders the invitation URL as a base64 PNG data URL
func (s *invitationService) QRCode(ctx context.Context, invitationID string) (*dto.QRCodeResponse, error) {
	invitation, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	url := token.InvitationURL(s.config.BaseURL, invitation.Token)
	png, err := qrcode.Encode(url, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, err
	}

	return &dto.QRCodeResponse{
		InvitationID: invitation.ID,
		URL:          url,
		DataURL:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

func (s *invitationService) toInvitationResponse(record *repository.InvitationRecord) *dto.InvitationResponse {
	inv := record.Invitation
	resp := &dto.InvitationResponse{
		ID:         inv.ID,
		EventID:    inv.EventID,
		GuestID:    inv.GuestID,
		Token:      inv.Token,
		RsvpStatus: inv.RsvpStatus,
		URL:        token.InvitationURL(s.config.BaseURL, inv.Token),
		CreatedAt:  inv.CreatedAt.Format(time.RFC3339),
	}
	if record.Guest != nil {
		resp.Guest = toGuestResponse(record.Guest)
	}
	if record.Event != nil {
		resp.Event = toEventResponse(record.Event)
	}
	if record.Attendance != nil {
		resp.Attendance = &dto.AttendanceInfo{
			CheckinTime: record.Attendance.CheckinTime.Format(time.RFC3339),
			Status:      record.Attendance.Status,
		}
	}
	return resp
}
