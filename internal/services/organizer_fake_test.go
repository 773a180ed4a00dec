package services

import (
	"context"
	"sync"

	"organizerdashboard/internal/domain"
)

// fakeOrganizerAPI implements domain.OrganizerAPI for service tests. Each
// operation delegates to an optional function field and counts its calls.
type fakeOrganizerAPI struct {
	mu sync.Mutex

	listMyEventsFn     func(ctx context.Context, filter domain.WindowFilter) (*domain.EventListResult, error)
	listParticipantsFn func(ctx context.Context, eventID int64) ([]domain.Participant, error)
	createEventFn      func(ctx context.Context, draft *domain.EventDraft) (*domain.Event, error)
	updateEventFn      func(ctx context.Context, eventID int64, draft *domain.EventDraft) (*domain.Event, error)
	deleteEventFn      func(ctx context.Context, eventID int64) (bool, error)
	reviewFn           func(ctx context.Context, eventID, participantID int64, status domain.ParticipantStatus) (bool, error)
	sendInvitationsFn  func(ctx context.Context, rows []domain.InvitationRow, companyID int64) (string, error)

	listMyEventsCalls     int
	listParticipantsCalls int
	createEventCalls      int
	updateEventCalls      int
	deleteEventCalls      int
	reviewCalls           int
	sendInvitationsCalls  int

	lastCreateDraft    *domain.EventDraft
	lastUpdateDraft    *domain.EventDraft
	lastUpdateEventID  int64
	lastReviewStatus   domain.ParticipantStatus
	lastSentRows       []domain.InvitationRow
	lastSentCompanyID  int64
	lastListFilter     domain.WindowFilter
	participantFetches []int64
}

func (f *fakeOrganizerAPI) ListMyEvents(ctx context.Context, filter domain.WindowFilter) (*domain.EventListResult, error) {
	f.mu.Lock()
	f.listMyEventsCalls++
	f.lastListFilter = filter
	f.mu.Unlock()
	if f.listMyEventsFn != nil {
		return f.listMyEventsFn(ctx, filter)
	}
	return &domain.EventListResult{}, nil
}

func (f *fakeOrganizerAPI) ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	f.mu.Lock()
	f.listParticipantsCalls++
	f.participantFetches = append(f.participantFetches, eventID)
	f.mu.Unlock()
	if f.listParticipantsFn != nil {
		return f.listParticipantsFn(ctx, eventID)
	}
	return nil, nil
}

func (f *fakeOrganizerAPI) CreateEvent(ctx context.Context, draft *domain.EventDraft) (*domain.Event, error) {
	f.mu.Lock()
	f.createEventCalls++
	f.lastCreateDraft = draft
	f.mu.Unlock()
	if f.createEventFn != nil {
		return f.createEventFn(ctx, draft)
	}
	return &domain.Event{ID: 1, Name: draft.Name, StartTime: draft.StartTime, EndTime: draft.EndTime}, nil
}

func (f *fakeOrganizerAPI) UpdateEvent(ctx context.Context, eventID int64, draft *domain.EventDraft) (*domain.Event, error) {
	f.mu.Lock()
	f.updateEventCalls++
	f.lastUpdateEventID = eventID
	f.lastUpdateDraft = draft
	f.mu.Unlock()
	if f.updateEventFn != nil {
		return f.updateEventFn(ctx, eventID, draft)
	}
	return &domain.Event{ID: eventID, Name: draft.Name, StartTime: draft.StartTime, EndTime: draft.EndTime}, nil
}

func (f *fakeOrganizerAPI) DeleteEvent(ctx context.Context, eventID int64) (bool, error) {
	f.mu.Lock()
	f.deleteEventCalls++
	f.mu.Unlock()
	if f.deleteEventFn != nil {
		return f.deleteEventFn(ctx, eventID)
	}
	return true, nil
}

func (f *fakeOrganizerAPI) ReviewParticipant(ctx context.Context, eventID, participantID int64, status domain.ParticipantStatus) (bool, error) {
	f.mu.Lock()
	f.reviewCalls++
	f.lastReviewStatus = status
	f.mu.Unlock()
	if f.reviewFn != nil {
		return f.reviewFn(ctx, eventID, participantID, status)
	}
	return true, nil
}

func (f *fakeOrganizerAPI) SendInvitations(ctx context.Context, rows []domain.InvitationRow, companyID int64) (string, error) {
	f.mu.Lock()
	f.sendInvitationsCalls++
	f.lastSentRows = rows
	f.lastSentCompanyID = companyID
	f.mu.Unlock()
	if f.sendInvitationsFn != nil {
		return f.sendInvitationsFn(ctx, rows, companyID)
	}
	return "Invitations sent.", nil
}
