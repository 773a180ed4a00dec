package services

import (
	"context"
	"fmt"
	"log/slog"

	"organizerdashboard/internal/domain"
)

type admissionService struct {
	api    domain.OrganizerAPI
	logger *slog.Logger
}

// NewAdmissionService creates an AdmissionService backed by the remote
// organizer API.
func NewAdmissionService(api domain.OrganizerAPI, logger *slog.Logger) domain.AdmissionService {
	return &admissionService{api: api, logger: logger}
}

// Review requests the PENDING -> status transition for the participant.
// Any target outside the transition table is rejected locally before the
// remote call. One fire-and-wait call, no retry; on failure the caller must
// leave the participant's displayed status unchanged. Whether the remote
// service accepts a review of an already-terminal participant is its own
// concern; no client-side check is made against the current status.
func (s *admissionService) Review(ctx context.Context, eventID, participantID int64, status domain.ParticipantStatus) (bool, error) {
	if !domain.StatusPending.CanTransitionTo(status) {
		return false, fmt.Errorf("review participant %d: status %q: %w", participantID, status, domain.ErrInvalidTransition)
	}
	ok, err := s.api.ReviewParticipant(ctx, eventID, participantID, status)
	if err != nil {
		return false, fmt.Errorf("review participant %d: %w", participantID, err)
	}
	if !ok {
		s.logger.WarnContext(ctx, "participant review not applied",
			"event_id", eventID, "participant_id", participantID, "status", status)
	}
	return ok, nil
}
