package domain

import "time"

// Event is an organizer-owned event as aggregated for the dashboard.
// Participants is populated lazily by the aggregation service;
// ParticipantsLoaded reports whether the participant sub-fetch succeeded.
// swagger:model Event
type Event struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Location             string          `json:"location"`
	StartTime            time.Time       `json:"start_time"`
	EndTime              time.Time       `json:"end_time"`
	JoinDeadline         *time.Time      `json:"join_deadline,omitempty"`
	AttendeeLimit        *int            `json:"attendee_limit,omitempty"`
	JoinApprovalRequired bool            `json:"join_approval_required"`
	DepartmentScope      DepartmentScope `json:"department_scope"`
	Agenda               []AgendaItem    `json:"agenda"`

	Participants       []Participant `json:"participants,omitempty"`
	ParticipantsLoaded bool          `json:"participants_loaded"`

	// Display fields are filled by the aggregation service after fetch.
	StartDisplay        string `json:"start_display,omitempty"`
	EndDisplay          string `json:"end_display,omitempty"`
	JoinDeadlineDisplay string `json:"join_deadline_display,omitempty"`
}

// AgendaItem is a single entry in an event's ordered agenda.
// swagger:model AgendaItem
type AgendaItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// DepartmentScope restricts an event to either all departments or a non-empty
// explicit set of department IDs. The two forms are mutually exclusive.
// swagger:model DepartmentScope
type DepartmentScope struct {
	AllDepartments bool    `json:"all_departments"`
	DepartmentIDs  []int64 `json:"department_ids,omitempty"`
}

// Valid reports whether the scope is one of the two allowed forms.
func (s DepartmentScope) Valid() bool {
	if s.AllDepartments {
		return len(s.DepartmentIDs) == 0
	}
	return len(s.DepartmentIDs) > 0
}

// EventDraft is the payload for creating or updating an event. Instants cross
// the remote boundary as ISO-8601; display formatting never appears here.
// swagger:model EventDraft
type EventDraft struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Location             string          `json:"location"`
	StartTime            time.Time       `json:"start_time"`
	EndTime              time.Time       `json:"end_time"`
	JoinDeadline         *time.Time      `json:"join_deadline,omitempty"`
	AttendeeLimit        *int            `json:"attendee_limit,omitempty"`
	JoinApprovalRequired bool            `json:"join_approval_required"`
	DepartmentScope      DepartmentScope `json:"department_scope"`
	Agenda               []AgendaItem    `json:"agenda"`
}

// WindowFilter scopes the event list and its rollup counts.
type WindowFilter string

const (
	WindowAll       WindowFilter = ""
	WindowThisWeek  WindowFilter = "thisWeek"
	WindowThisMonth WindowFilter = "thisMonth"
)

// Valid reports whether f is one of the three supported filters.
func (f WindowFilter) Valid() bool {
	switch f {
	case WindowAll, WindowThisWeek, WindowThisMonth:
		return true
	}
	return false
}

// EventCounts are the server-computed event rollups returned with the list.
// swagger:model EventCounts
type EventCounts struct {
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
	AllEvents int `json:"all_events"`
}

// ParticipantCounts are the server-computed accepted-participant rollups.
// swagger:model ParticipantCounts
type ParticipantCounts struct {
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
	AllEvents int `json:"all_events"`
}

// EventListResult is the outcome of one organizer event-list fetch.
type EventListResult struct {
	Events               []Event
	Counts               EventCounts
	AcceptedParticipants ParticipantCounts
}

// DashboardData is the fully aggregated dashboard payload: the organizer's
// events with participants attached where the sub-fetch succeeded, plus the
// server rollups.
// swagger:model DashboardData
type DashboardData struct {
	Events               []Event           `json:"events"`
	Counts               EventCounts       `json:"counts"`
	AcceptedParticipants ParticipantCounts `json:"accepted_participants"`
}
