package services

import (
	"context"
	"fmt"
	"log/slog"

	"organizerdashboard/internal/domain"
)

type eventService struct {
	api    domain.OrganizerAPI
	logger *slog.Logger
}

// NewEventService creates an EventService backed by the remote organizer API.
func NewEventService(api domain.OrganizerAPI, logger *slog.Logger) domain.EventService {
	return &eventService{api: api, logger: logger}
}

func (s *eventService) CreateEvent(ctx context.Context, form domain.EventForm) (*domain.Event, error) {
	form.CurrentAcceptedCount = nil
	draft, err := ValidateEventForm(form)
	if err != nil {
		return nil, err
	}
	event, err := s.api.CreateEvent(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID int64, form domain.EventForm) (*domain.Event, error) {
	// The capacity invariant is checked against the live participant
	// snapshot, not the snapshot the form was rendered from. If the
	// snapshot cannot be fetched the update does not proceed.
	if form.AttendeeLimitEnabled {
		participants, err := s.api.ListParticipants(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("fetch participant snapshot: %w", err)
		}
		accepted := CountAccepted(participants)
		form.CurrentAcceptedCount = &accepted
	}
	draft, err := ValidateEventForm(form)
	if err != nil {
		return nil, err
	}
	event, err := s.api.UpdateEvent(ctx, eventID, draft)
	if err != nil {
		return nil, fmt.Errorf("update event %d: %w", eventID, err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID int64) (bool, error) {
	ok, err := s.api.DeleteEvent(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("delete event %d: %w", eventID, err)
	}
	return ok, nil
}
