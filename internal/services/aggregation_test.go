package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"organizerdashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listResultWithEvents(ids ...int64) *domain.EventListResult {
	events := make([]domain.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, domain.Event{
			ID:        id,
			Name:      "Event",
			StartTime: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		})
	}
	return &domain.EventListResult{
		Events:               events,
		Counts:               domain.EventCounts{ThisWeek: 1, ThisMonth: 2, AllEvents: len(ids)},
		AcceptedParticipants: domain.ParticipantCounts{ThisWeek: 3, ThisMonth: 5, AllEvents: 9},
	}
}

func TestAggregationService_LoadEvents(t *testing.T) {
	fake := &fakeOrganizerAPI{
		listMyEventsFn: func(_ context.Context, _ domain.WindowFilter) (*domain.EventListResult, error) {
			return listResultWithEvents(10, 11), nil
		},
		listParticipantsFn: func(_ context.Context, eventID int64) ([]domain.Participant, error) {
			return []domain.Participant{{ParticipantID: eventID * 100, Status: domain.StatusAccepted}}, nil
		},
	}
	svc := NewAggregationService(fake, testLogger, 4, time.Second)

	data, err := svc.LoadEvents(context.Background(), domain.WindowAll)
	require.NoError(t, err)
	require.Len(t, data.Events, 2)

	for i, wantID := range []int64{10, 11} {
		ev := data.Events[i]
		assert.Equal(t, wantID, ev.ID, "result order matches list order")
		assert.True(t, ev.ParticipantsLoaded)
		require.Len(t, ev.Participants, 1)
		assert.Equal(t, wantID*100, ev.Participants[0].ParticipantID)
	}
	assert.Equal(t, 2, data.Counts.ThisMonth)
	assert.Equal(t, 9, data.AcceptedParticipants.AllEvents)
}

func TestAggregationService_LoadEvents_PartialFailure(t *testing.T) {
	// One participant fetch fails: its event stays in the result with
	// participants unset, every other event is populated.
	fake := &fakeOrganizerAPI{
		listMyEventsFn: func(_ context.Context, _ domain.WindowFilter) (*domain.EventListResult, error) {
			return listResultWithEvents(1, 2, 3), nil
		},
		listParticipantsFn: func(_ context.Context, eventID int64) ([]domain.Participant, error) {
			if eventID == 2 {
				return nil, &domain.NetworkFailure{Op: "list participants", Err: errors.New("connection refused")}
			}
			return []domain.Participant{{ParticipantID: eventID, Status: domain.StatusPending}}, nil
		},
	}
	svc := NewAggregationService(fake, testLogger, 4, time.Second)

	data, err := svc.LoadEvents(context.Background(), domain.WindowAll)
	require.NoError(t, err, "a sub-fetch failure never fails the aggregate")
	require.Len(t, data.Events, 3, "no event is dropped")

	assert.True(t, data.Events[0].ParticipantsLoaded)
	assert.False(t, data.Events[1].ParticipantsLoaded)
	assert.Nil(t, data.Events[1].Participants)
	assert.True(t, data.Events[2].ParticipantsLoaded)
}

func TestAggregationService_LoadEvents_AllFetchesFail(t *testing.T) {
	fake := &fakeOrganizerAPI{
		listMyEventsFn: func(_ context.Context, _ domain.WindowFilter) (*domain.EventListResult, error) {
			return listResultWithEvents(1, 2), nil
		},
		listParticipantsFn: func(_ context.Context, _ int64) ([]domain.Participant, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewAggregationService(fake, testLogger, 4, time.Second)

	data, err := svc.LoadEvents(context.Background(), domain.WindowAll)
	require.NoError(t, err)
	require.Len(t, data.Events, 2)
	for _, ev := range data.Events {
		assert.False(t, ev.ParticipantsLoaded)
	}
}

func TestAggregationService_LoadEvents_ListFailureFails(t *testing.T) {
	fake := &fakeOrganizerAPI{
		listMyEventsFn: func(_ context.Context, _ domain.WindowFilter) (*domain.EventListResult, error) {
			return nil, &domain.NetworkFailure{Op: "list events", Err: errors.New("no route")}
		},
	}
	svc := NewAggregationService(fake, testLogger, 4, time.Second)

	_, err := svc.LoadEvents(context.Background(), domain.WindowAll)
	var network *domain.NetworkFailure
	require.ErrorAs(t, err, &network)
}

func TestAggregationService_LoadEvents_FilterValidation(t *testing.T) {
	fake := &fakeOrganizerAPI{}
	svc := NewAggregationService(fake, testLogger, 4, time.Second)

	_, err := svc.LoadEvents(context.Background(), domain.WindowFilter("lastYear"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, fake.listMyEventsCalls)

	_, err = svc.LoadEvents(context.Background(), domain.WindowThisWeek)
	require.NoError(t, err)
	assert.Equal(t, domain.WindowThisWeek, fake.lastListFilter)
}

func TestAggregationService_LoadEvents_DateFormatting(t *testing.T) {
	deadline := time.Date(2025, 3, 9, 18, 30, 0, 0, time.UTC)
	fake := &fakeOrganizerAPI{
		listMyEventsFn: func(_ context.Context, _ domain.WindowFilter) (*domain.EventListResult, error) {
			result := listResultWithEvents(1, 2)
			result.Events[0].JoinDeadline = &deadline
			return result, nil
		},
	}
	svc := NewAggregationService(fake, testLogger, 4, time.Second)

	data, err := svc.LoadEvents(context.Background(), domain.WindowAll)
	require.NoError(t, err)

	assert.Equal(t, "Mar 10, 2025 10:00 AM", data.Events[0].StartDisplay)
	assert.Equal(t, "Mar 10, 2025 12:00 PM", data.Events[0].EndDisplay)
	assert.Equal(t, "Mar 9, 2025 6:30 PM", data.Events[0].JoinDeadlineDisplay)
	assert.Equal(t, "No Deadline", data.Events[1].JoinDeadlineDisplay)
}

func TestAggregationService_LoadEvents_BoundedConcurrency(t *testing.T) {
	const limit = 2
	var inFlight, peak int64
	var mu sync.Mutex

	fake := &fakeOrganizerAPI{
		listMyEventsFn: func(_ context.Context, _ domain.WindowFilter) (*domain.EventListResult, error) {
			return listResultWithEvents(1, 2, 3, 4, 5, 6), nil
		},
		listParticipantsFn: func(_ context.Context, _ int64) ([]domain.Participant, error) {
			n := atomic.AddInt64(&inFlight, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
			return nil, nil
		},
	}
	svc := NewAggregationService(fake, testLogger, limit, time.Second)

	data, err := svc.LoadEvents(context.Background(), domain.WindowAll)
	require.NoError(t, err)
	assert.Len(t, data.Events, 6)
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(limit))
}

func TestAggregationService_LoadParticipants(t *testing.T) {
	fake := &fakeOrganizerAPI{
		listParticipantsFn: func(_ context.Context, eventID int64) ([]domain.Participant, error) {
			return []domain.Participant{{ParticipantID: 5, Status: domain.StatusAccepted}}, nil
		},
	}
	svc := NewAggregationService(fake, testLogger, 4, time.Second)

	participants, err := svc.LoadParticipants(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, []int64{3}, fake.participantFetches)
}
