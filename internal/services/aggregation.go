package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"organizerdashboard/internal/domain"
)

// displayLayout is the fixed human-readable form for dashboard dates.
const displayLayout = "Jan 2, 2006 3:04 PM"

// noDeadlineMarker is rendered when an event has no join deadline.
const noDeadlineMarker = "No Deadline"

const (
	defaultFanOutLimit  = 8
	defaultFetchTimeout = 10 * time.Second
)

type aggregationService struct {
	api          domain.OrganizerAPI
	logger       *slog.Logger
	fanOutLimit  int
	fetchTimeout time.Duration
}

// NewAggregationService creates an AggregationService. fanOutLimit bounds the
// number of concurrent participant fetches; fetchTimeout caps each one.
// Non-positive values fall back to defaults.
func NewAggregationService(api domain.OrganizerAPI, logger *slog.Logger, fanOutLimit int, fetchTimeout time.Duration) domain.AggregationService {
	if fanOutLimit <= 0 {
		fanOutLimit = defaultFanOutLimit
	}
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &aggregationService{
		api:          api,
		logger:       logger,
		fanOutLimit:  fanOutLimit,
		fetchTimeout: fetchTimeout,
	}
}

// LoadEvents fetches the organizer's event list and fans out one participant
// fetch per event. A failed sub-fetch degrades that event (participants left
// unset) and never aborts the aggregate: the result always holds one slot per
// listed event, in list order.
func (s *aggregationService) LoadEvents(ctx context.Context, filter domain.WindowFilter) (*domain.DashboardData, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("window filter %q: %w", filter, domain.ErrInvalidInput)
	}

	list, err := s.api.ListMyEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := list.Events
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOutLimit)
	for i := range events {
		g.Go(func() error {
			ev := &events[i]
			fctx, cancel := context.WithTimeout(gctx, s.fetchTimeout)
			defer cancel()
			participants, err := s.api.ListParticipants(fctx, ev.ID)
			if err != nil {
				// Partial-failure aggregation: log and keep the slot.
				s.logger.WarnContext(ctx, "participant fetch failed",
					"event_id", ev.ID, "err", err)
				return nil
			}
			ev.Participants = participants
			ev.ParticipantsLoaded = true
			return nil
		})
	}
	// Goroutines never return an error; Wait is the fan-in barrier.
	_ = g.Wait()

	for i := range events {
		formatEventDates(&events[i])
	}

	return &domain.DashboardData{
		Events:               events,
		Counts:               list.Counts,
		AcceptedParticipants: list.AcceptedParticipants,
	}, nil
}

// LoadParticipants fetches the participant list of a single event.
func (s *aggregationService) LoadParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	fctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()
	participants, err := s.api.ListParticipants(fctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants for event %d: %w", eventID, err)
	}
	return participants, nil
}

// formatEventDates fills the display fields from the event instants. An
// absent join deadline renders as the "No Deadline" marker.
func formatEventDates(ev *domain.Event) {
	ev.StartDisplay = ev.StartTime.Format(displayLayout)
	ev.EndDisplay = ev.EndTime.Format(displayLayout)
	if ev.JoinDeadline != nil {
		ev.JoinDeadlineDisplay = ev.JoinDeadline.Format(displayLayout)
	} else {
		ev.JoinDeadlineDisplay = noDeadlineMarker
	}
}
