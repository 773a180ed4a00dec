package domain

import "context"

// CredentialProvider supplies the bearer credential attached to every remote
// organizer call. Injected explicitly so tests can supply a fake provider
// without touching global state.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// OrganizerAPI is the remote event-organizer service. Persistence, cascading
// deletes, and authorization enforcement live behind this boundary.
type OrganizerAPI interface {
	// ListMyEvents fetches the organizer's events, optionally scoped by
	// filter, together with the server-computed rollup counts.
	ListMyEvents(ctx context.Context, filter WindowFilter) (*EventListResult, error)
	// ListParticipants fetches the participant sub-resource of one event.
	ListParticipants(ctx context.Context, eventID int64) ([]Participant, error)
	// CreateEvent submits a validated draft and returns the created event.
	CreateEvent(ctx context.Context, draft *EventDraft) (*Event, error)
	// UpdateEvent submits a validated partial draft for an existing event.
	UpdateEvent(ctx context.Context, eventID int64, draft *EventDraft) (*Event, error)
	// DeleteEvent deletes the event; removal of participant links is the
	// remote service's concern.
	DeleteEvent(ctx context.Context, eventID int64) (bool, error)
	// ReviewParticipant asks the remote service to move the participant to
	// status (ACCEPTED or REJECTED).
	ReviewParticipant(ctx context.Context, eventID, participantID int64, status ParticipantStatus) (bool, error)
	// SendInvitations submits a bulk invitation batch for the company and
	// returns the backend's outcome message.
	SendInvitations(ctx context.Context, rows []InvitationRow, companyID int64) (string, error)
}

// EventService covers the organizer's event write path: local validation
// first, then the remote call. No network call is issued for a draft that
// fails validation.
type EventService interface {
	CreateEvent(ctx context.Context, form EventForm) (*Event, error)
	UpdateEvent(ctx context.Context, eventID int64, form EventForm) (*Event, error)
	DeleteEvent(ctx context.Context, eventID int64) (bool, error)
}

// EventForm is a proposed event as entered on the submission screen, before
// it becomes an EventDraft. CurrentAcceptedCount is nil on create; on update
// the service fills it from the live participant snapshot so the capacity
// invariant is re-checked, not merely format rules.
type EventForm struct {
	Name                 string       `json:"name"`
	Description          string       `json:"description"`
	Location             string       `json:"location"`
	StartTime            string       `json:"start_time"`
	EndTime              string       `json:"end_time"`
	JoinDeadline         string       `json:"join_deadline,omitempty"`
	AttendeeLimitEnabled bool         `json:"attendee_limit_enabled"`
	AttendeeLimit        int          `json:"attendee_limit"`
	JoinApprovalRequired bool         `json:"join_approval_required"`
	AgendaEnabled        bool         `json:"agenda_enabled"`
	Agenda               []AgendaItem `json:"agenda,omitempty"`
	AllDepartments       bool         `json:"all_departments"`
	DepartmentIDs        []int64      `json:"department_ids,omitempty"`

	CurrentAcceptedCount *int `json:"-"`
}

// AggregationService merges the organizer's event list with per-event
// participant fetches and the server rollups.
type AggregationService interface {
	LoadEvents(ctx context.Context, filter WindowFilter) (*DashboardData, error)
	LoadParticipants(ctx context.Context, eventID int64) ([]Participant, error)
}

// AdmissionService issues PENDING -> {ACCEPTED, REJECTED} transitions.
type AdmissionService interface {
	Review(ctx context.Context, eventID, participantID int64, status ParticipantStatus) (bool, error)
}

// InvitationService validates a bulk invitation batch and, when every row is
// clean, submits it to the remote service.
type InvitationService interface {
	SendBulk(ctx context.Context, rows []InvitationRow) (string, []InvitationRowErrors, error)
}
