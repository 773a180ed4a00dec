package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"organizerdashboard/internal/domain"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Hand-written fakes for the service interfaces. Each method delegates to a
// fn field so tests configure behavior per case.

type fakeAggregationService struct {
	mu                 sync.Mutex
	loadEventsFn       func(ctx context.Context, filter domain.WindowFilter) (*domain.DashboardData, error)
	loadParticipantsFn func(ctx context.Context, eventID int64) ([]domain.Participant, error)
	lastFilter         domain.WindowFilter
	loadEventsCalls    int
}

func (f *fakeAggregationService) LoadEvents(ctx context.Context, filter domain.WindowFilter) (*domain.DashboardData, error) {
	f.mu.Lock()
	f.lastFilter = filter
	f.loadEventsCalls++
	f.mu.Unlock()
	if f.loadEventsFn != nil {
		return f.loadEventsFn(ctx, filter)
	}
	return &domain.DashboardData{}, nil
}

func (f *fakeAggregationService) LoadParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	if f.loadParticipantsFn != nil {
		return f.loadParticipantsFn(ctx, eventID)
	}
	return nil, nil
}

type fakeEventService struct {
	mu            sync.Mutex
	createFn      func(ctx context.Context, form domain.EventForm) (*domain.Event, error)
	updateFn      func(ctx context.Context, eventID int64, form domain.EventForm) (*domain.Event, error)
	deleteFn      func(ctx context.Context, eventID int64) (bool, error)
	createCalls   int
	updateCalls   int
	lastForm      domain.EventForm
	lastEventID   int64
	deletedEvents []int64
}

func (f *fakeEventService) CreateEvent(ctx context.Context, form domain.EventForm) (*domain.Event, error) {
	f.mu.Lock()
	f.createCalls++
	f.lastForm = form
	f.mu.Unlock()
	if f.createFn != nil {
		return f.createFn(ctx, form)
	}
	return &domain.Event{ID: 1, Name: form.Name}, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, eventID int64, form domain.EventForm) (*domain.Event, error) {
	f.mu.Lock()
	f.updateCalls++
	f.lastEventID = eventID
	f.lastForm = form
	f.mu.Unlock()
	if f.updateFn != nil {
		return f.updateFn(ctx, eventID, form)
	}
	return &domain.Event{ID: eventID, Name: form.Name}, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID int64) (bool, error) {
	f.mu.Lock()
	f.deletedEvents = append(f.deletedEvents, eventID)
	f.mu.Unlock()
	if f.deleteFn != nil {
		return f.deleteFn(ctx, eventID)
	}
	return true, nil
}

type fakeAdmissionService struct {
	mu         sync.Mutex
	reviewFn   func(ctx context.Context, eventID, participantID int64, status domain.ParticipantStatus) (bool, error)
	lastStatus domain.ParticipantStatus
	calls      int
}

func (f *fakeAdmissionService) Review(ctx context.Context, eventID, participantID int64, status domain.ParticipantStatus) (bool, error) {
	f.mu.Lock()
	f.calls++
	f.lastStatus = status
	f.mu.Unlock()
	if f.reviewFn != nil {
		return f.reviewFn(ctx, eventID, participantID, status)
	}
	return true, nil
}

type fakeInvitationService struct {
	mu       sync.Mutex
	sendFn   func(ctx context.Context, rows []domain.InvitationRow) (string, []domain.InvitationRowErrors, error)
	calls    int
	lastRows []domain.InvitationRow
}

func (f *fakeInvitationService) SendBulk(ctx context.Context, rows []domain.InvitationRow) (string, []domain.InvitationRowErrors, error) {
	f.mu.Lock()
	f.calls++
	f.lastRows = rows
	f.mu.Unlock()
	if f.sendFn != nil {
		return f.sendFn(ctx, rows)
	}
	return "ok", nil, nil
}

// envelope mirrors helpers.APIResponse with Data kept raw for per-test decoding.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func serve(t *testing.T, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}
