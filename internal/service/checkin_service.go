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
	"github.com/eznproject/undangan/pkg/telemetry"
)

// Check-in result messages shown on the scanner screen
const (
	MsgCheckinSuccess = "Check-in berhasil"
	MsgAlreadyScanned = "QR Code sudah digunakan"
	MsgInvalidToken   = "QR Code tidak valid"
)

// CheckinService records physical attendance from token presentation
type CheckinService interface {
	// CheckIn resolves the token and records attendance. A repeated scan is
	// a successful outcome carrying the original checkin time, never an
	// error; an unknown token fails with domain.ErrInvalidToken.
	CheckIn(ctx context.Context, tok string) (*dto.ScanResponse, error)
}

// checkinService implements CheckinService
type checkinService struct {
	invitationRepo repository.InvitationRepository
	attendanceRepo repository.AttendanceRepository
	scanCounter    *telemetry.Counter
}

// NewCheckinService creates a new CheckinService
func NewCheckinService(
	invitationRepo repository.InvitationRepository,
	attendanceRepo repository.AttendanceRepository,
) CheckinService {
	scanCounter, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "undangan.checkin.scans",
		Description: "Token scans by result",
		Unit:        "{scan}",
	})
	if err != nil {
		logger.Warn("failed to create scan counter", zap.Error(err))
	}

	return &checkinService{
		invitationRepo: invitationRepo,
		attendanceRepo: attendanceRepo,
		scanCounter:    scanCounter,
	}
}

// CheckIn resolves the token and records attendance exactly once
func (s *checkinService) CheckIn(ctx context.Context, tok string) (*dto.ScanResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "checkin.scan")
	defer span.End()

	record, err := s.invitationRepo.GetDetailByToken(ctx, tok)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationNotFound) {
			s.count(ctx, "invalid")
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	invitation := record.Invitation

	// Fast path: the join already shows a prior check-in.
	if record.Attendance != nil {
		s.count(ctx, "repeat")
		return s.alreadyCheckedIn(record, record.Attendance), nil
	}

	attendance, err := domain.NewAttendance(invitation.ID)
	if err != nil {
		return nil, err
	}

	err = s.attendanceRepo.Create(ctx, attendance)
	if err == nil {
		s.count(ctx, "success")
		logger.InfoCtx(ctx, "guest checked in",
			zap.String("invitation_id", invitation.ID),
			zap.String("event_id", invitation.EventID),
		)
		return &dto.ScanResponse{
			AlreadyCheckedIn: false,
			CheckinTime:      attendance.CheckinTime.Format(time.RFC3339),
			Message:          MsgCheckinSuccess,
			Guest:            guestInfo(record),
			Event:            eventInfo(record),
		}, nil
	}
	if !errors.Is(err, domain.ErrAlreadyCheckedIn) {
		return nil, err
	}

	// Lost a concurrent scan race. The winning row's timestamp is the one
	// every caller must see.
	winner, err := s.attendanceRepo.GetByInvitationID(ctx, invitation.ID)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		// Row vanished between insert and re-read; only an event cascade
		// delete can do that.
		return nil, domain.ErrInvalidToken
	}
	s.count(ctx, "repeat")
	return s.alreadyCheckedIn(record, winner), nil
}

func (s *checkinService) alreadyCheckedIn(record *repository.InvitationRecord, attendance *domain.Attendance) *dto.ScanResponse {
	return &dto.ScanResponse{
		AlreadyCheckedIn: true,
		CheckinTime:      attendance.CheckinTime.Format(time.RFC3339),
		Message:          MsgAlreadyScanned,
		Guest:            guestInfo(record),
		Event:            eventInfo(record),
	}
}

func (s *checkinService) count(ctx context.Context, result string) {
	if s.scanCounter != nil {
		s.scanCounter.Inc(ctx, telemetry.ScanResultAttr(result))
	}
}

func guestInfo(record *repository.InvitationRecord) *dto.GuestResponse {
	if record.Guest == nil {
		return nil
	}
	return toGuestResponse(record.Guest)
}

func eventInfo(record *repository.InvitationRecord) *dto.EventResponse {
	if record.Event == nil {
		return nil
	}
	return toEventResponse(record.Event)
}
