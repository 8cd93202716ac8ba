package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eznproject/undangan/internal/domain"
	"github.com/eznproject/undangan/internal/dto"
	"github.com/eznproject/undangan/internal/repository"
	"github.com/eznproject/undangan/pkg/logger"
	"github.com/eznproject/undangan/pkg/telemetry"
)

// ImportService grows the guest directory and invitation ledger from
// externally supplied batches. Both entry points are idempotent: re-running
// the same input turns prior successes into skips.
type ImportService interface {
	// BulkImport processes guest rows for one event, row by row. A row
	// failure never aborts the batch; the report records each outcome in
	// input order.
	BulkImport(ctx context.Context, eventID string, rows []dto.ImportRow) (*dto.ImportReport, error)
	// InviteExisting invites already-registered guests to an event.
	// Already-invited guests count as skipped.
	InviteExisting(ctx context.Context, eventID string, guestIDs []string) (*dto.ImportReport, error)
}

// importService implements ImportService
type importService struct {
	eventRepo         repository.EventRepository
	guestService      GuestService
	invitationService InvitationService
	rowCounter        *telemetry.Counter
}

// NewImportService creates a new ImportService
func NewImportService(
	eventRepo repository.EventRepository,
	guestService GuestService,
	invitationService InvitationService,
) ImportService {
	rowCounter, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "undangan.import.rows",
		Description: "Import rows by outcome",
		Unit:        "{row}",
	})
	if err != nil {
		logger.Warn("failed to create import counter", zap.Error(err))
	}

	return &importService{
		eventRepo:         eventRepo,
		guestService:      guestService,
		invitationService: invitationService,
		rowCounter:        rowCounter,
	}
}

// BulkImport processes guest rows for one event
func (s *importService) BulkImport(ctx context.Context, eventID string, rows []dto.ImportRow) (*dto.ImportReport, error) {
	ctx, span := telemetry.StartSpan(ctx, "import.bulk")
	defer span.End()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	report := &dto.ImportReport{Details: make([]dto.ImportRowResult, 0, len(rows))}
	for i, row := range rows {
		report.Details = append(report.Details, s.importRow(ctx, eventID, i+1, row))
	}
	for _, d := range report.Details {
		switch d.Status {
		case dto.ImportRowSuccess:
			report.Success++
		case dto.ImportRowSkipped:
			report.Skipped++
		default:
			report.Errors++
		}
	}

	logger.InfoCtx(ctx, "bulk import finished",
		zap.String("event_id", eventID),
		zap.Int("success", report.Success),
		zap.Int("skipped", report.Skipped),
		zap.Int("errors", report.Errors),
	)
	return report, nil
}

// importRow handles one row independently; every failure becomes a report
// entry, never an aborted batch
func (s *importService) importRow(ctx context.Context, eventID string, rowNum int, row dto.ImportRow) dto.ImportRowResult {
	result := dto.ImportRowResult{Row: rowNum, Name: row.Name}

	if valid, msg := row.Validate(); !valid {
		result.Status = dto.ImportRowError
		result.Message = msg
		s.count(ctx, dto.ImportRowError, "bulk")
		return result
	}

	guest, err := s.guestService.FindOrCreate(ctx, row.Name, row.Whatsapp, row.Address, row.Area)
	if err != nil {
		result.Status = dto.ImportRowError
		result.Message = err.Error()
		s.count(ctx, dto.ImportRowError, "bulk")
		return result
	}

	result.Status, result.Message = s.invite(ctx, eventID, guest.ID)
	s.count(ctx, result.Status, "bulk")
	return result
}

// InviteExisting invites already-registered guests to an event
func (s *importService) InviteExisting(ctx context.Context, eventID string, guestIDs []string) (*dto.ImportReport, error) {
	ctx, span := telemetry.StartSpan(ctx, "import.invite_existing")
	defer span.End()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	report := &dto.ImportReport{Details: make([]dto.ImportRowResult, 0, len(guestIDs))}
	for i, guestID := range guestIDs {
		result := dto.ImportRowResult{Row: i + 1}
		result.Status, result.Message = s.invite(ctx, eventID, guestID)
		s.count(ctx, result.Status, "existing")
		report.Details = append(report.Details, result)
		switch result.Status {
		case dto.ImportRowSuccess:
			report.Success++
		case dto.ImportRowSkipped:
			report.Skipped++
		default:
			report.Errors++
		}
	}
	return report, nil
}

// invite attempts one invitation, mapping duplicates to skips and retrying a
// token collision once with a fresh token
func (s *importService) invite(ctx context.Context, eventID, guestID string) (status, message string) {
	_, err := s.invitationService.Invite(ctx, eventID, guestID)
	if errors.Is(err, domain.ErrTokenConflict) {
		_, err = s.invitationService.Invite(ctx, eventID, guestID)
	}
	switch {
	case err == nil:
		return dto.ImportRowSuccess, ""
	case errors.Is(err, domain.ErrDuplicateInvitation):
		return dto.ImportRowSkipped, "Tamu sudah diundang ke acara ini"
	default:
		return dto.ImportRowError, err.Error()
	}
}

func (s *importService) count(ctx context.Context, status, mode string) {
	if s.rowCounter != nil {
		s.rowCounter.Inc(ctx, telemetry.ImportOutcomeAttr(status), telemetry.ImportModeAttr(mode))
	}
}
