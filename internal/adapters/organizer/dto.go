package organizer

import (
	"fmt"
	"time"

	"organizerdashboard/internal/domain"
)

// Wire shapes for the remote event-organizer service. Payloads are parsed and
// validated here, at the boundary; malformed server data is rejected instead
// of propagating inward.

type eventListDTO struct {
	Events                []eventDTO `json:"events"`
	ThisWeekCount         int        `json:"thisWeekCount"`
	ThisMonthCount        int        `json:"thisMonthCount"`
	AllEventsCount        int        `json:"allEventsCount"`
	ThisWeekParticipants  int        `json:"thisWeekParticipants"`
	ThisMonthParticipants int        `json:"thisMonthParticipants"`
	AllEventsParticipants int        `json:"allEventsParticipants"`
}

func (d eventListDTO) toDomain() (*domain.EventListResult, error) {
	events := make([]domain.Event, 0, len(d.Events))
	for i, e := range d.Events {
		ev, err := e.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list events: event %d: %w", i, err)
		}
		events = append(events, *ev)
	}
	return &domain.EventListResult{
		Events: events,
		Counts: domain.EventCounts{
			ThisWeek:  d.ThisWeekCount,
			ThisMonth: d.ThisMonthCount,
			AllEvents: d.AllEventsCount,
		},
		AcceptedParticipants: domain.ParticipantCounts{
			ThisWeek:  d.ThisWeekParticipants,
			ThisMonth: d.ThisMonthParticipants,
			AllEvents: d.AllEventsParticipants,
		},
	}, nil
}

type eventDTO struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Location             string          `json:"location"`
	StartTime            time.Time       `json:"startTime"`
	EndTime              time.Time       `json:"endTime"`
	JoinDeadline         *time.Time      `json:"joinDeadline"`
	AttendeeLimit        *int            `json:"attendeeLimit"`
	JoinApprovalRequired bool            `json:"joinApprovalRequired"`
	AllDepartments       bool            `json:"allDepartments"`
	DepartmentIDs        []int64         `json:"departmentIds"`
	Agenda               []agendaItemDTO `json:"agenda"`
}

func (d eventDTO) toDomain() (*domain.Event, error) {
	if d.ID <= 0 {
		return nil, fmt.Errorf("event id %d: %w", d.ID, domain.ErrInvalidInput)
	}
	if d.StartTime.IsZero() || d.EndTime.IsZero() {
		return nil, fmt.Errorf("event %d has no start or end time: %w", d.ID, domain.ErrInvalidInput)
	}
	if d.AttendeeLimit != nil && *d.AttendeeLimit <= 0 {
		return nil, fmt.Errorf("event %d attendee limit %d: %w", d.ID, *d.AttendeeLimit, domain.ErrInvalidInput)
	}
	agenda := make([]domain.AgendaItem, 0, len(d.Agenda))
	for _, item := range d.Agenda {
		agenda = append(agenda, domain.AgendaItem(item))
	}
	return &domain.Event{
		ID:                   d.ID,
		Name:                 d.Name,
		Description:          d.Description,
		Location:             d.Location,
		StartTime:            d.StartTime,
		EndTime:              d.EndTime,
		JoinDeadline:         d.JoinDeadline,
		AttendeeLimit:        d.AttendeeLimit,
		JoinApprovalRequired: d.JoinApprovalRequired,
		DepartmentScope: domain.DepartmentScope{
			AllDepartments: d.AllDepartments,
			DepartmentIDs:  d.DepartmentIDs,
		},
		Agenda: agenda,
	}, nil
}

type agendaItemDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
}

type participantDTO struct {
	ParticipantID    int64          `json:"participantId"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	DepartmentName   string         `json:"departmentName"`
	Status           string         `json:"status"`
	JoinedEventCount int            `json:"joinedEventCount"`
	EventLinks       []eventLinkDTO `json:"eventLinks"`
	Age              *int           `json:"age"`
	Gender           string         `json:"gender"`
}

func (d participantDTO) toDomain() (domain.Participant, error) {
	if d.ParticipantID <= 0 {
		return domain.Participant{}, fmt.Errorf("participant id %d: %w", d.ParticipantID, domain.ErrInvalidInput)
	}
	status := domain.ParticipantStatus(d.Status)
	if !status.Valid() {
		return domain.Participant{}, fmt.Errorf("participant %d status %q: %w", d.ParticipantID, d.Status, domain.ErrInvalidInput)
	}
	links := make([]domain.EventLink, 0, len(d.EventLinks))
	for _, l := range d.EventLinks {
		links = append(links, domain.EventLink{EventID: l.EventID, EventName: l.EventName})
	}
	return domain.Participant{
		ParticipantID:    d.ParticipantID,
		Name:             d.Name,
		Email:            d.Email,
		DepartmentName:   d.DepartmentName,
		Status:           status,
		JoinedEventCount: d.JoinedEventCount,
		EventLinks:       links,
		Age:              d.Age,
		Gender:           domain.Gender(d.Gender),
	}, nil
}

type eventLinkDTO struct {
	EventID   int64  `json:"eventId"`
	EventName string `json:"eventName"`
}

type eventDraftDTO struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Location             string          `json:"location"`
	StartTime            time.Time       `json:"startTime"`
	EndTime              time.Time       `json:"endTime"`
	JoinDeadline         *time.Time      `json:"joinDeadline,omitempty"`
	AttendeeLimit        *int            `json:"attendeeLimit,omitempty"`
	JoinApprovalRequired bool            `json:"joinApprovalRequired"`
	AllDepartments       bool            `json:"allDepartments"`
	DepartmentIDs        []int64         `json:"departmentIds,omitempty"`
	Agenda               []agendaItemDTO `json:"agenda,omitempty"`
}

func draftToDTO(draft *domain.EventDraft) eventDraftDTO {
	agenda := make([]agendaItemDTO, 0, len(draft.Agenda))
	for _, item := range draft.Agenda {
		agenda = append(agenda, agendaItemDTO(item))
	}
	return eventDraftDTO{
		Name:                 draft.Name,
		Description:          draft.Description,
		Location:             draft.Location,
		StartTime:            draft.StartTime,
		EndTime:              draft.EndTime,
		JoinDeadline:         draft.JoinDeadline,
		AttendeeLimit:        draft.AttendeeLimit,
		JoinApprovalRequired: draft.JoinApprovalRequired,
		AllDepartments:       draft.DepartmentScope.AllDepartments,
		DepartmentIDs:        draft.DepartmentScope.DepartmentIDs,
		Agenda:               agenda,
	}
}

type invitationRowDTO struct {
	Email        string `json:"email"`
	DepartmentID int64  `json:"departmentId"`
}

type sendInvitationsRequest struct {
	Emails    []invitationRowDTO `json:"emails"`
	CompanyID int64              `json:"companyId"`
}
