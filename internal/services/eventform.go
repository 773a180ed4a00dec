package services

import (
	"strings"
	"time"

	"organizerdashboard/internal/domain"
)

// ValidateEventForm checks a proposed event against the temporal and capacity
// rules and, when every rule passes, returns the draft to submit. Rules are
// evaluated in a fixed order and the first failure short-circuits; the
// returned error message is what the submission screen displays. No network
// call may be issued unless this returns a non-nil draft.
func ValidateEventForm(form domain.EventForm) (*domain.EventDraft, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, domain.NewValidationError("Name cannot be empty.")
	}
	if strings.TrimSpace(form.Description) == "" {
		return nil, domain.NewValidationError("Description cannot be empty.")
	}
	if strings.TrimSpace(form.Location) == "" {
		return nil, domain.NewValidationError("Location cannot be empty.")
	}
	if strings.TrimSpace(form.StartTime) == "" {
		return nil, domain.NewValidationError("Start time cannot be empty.")
	}
	if strings.TrimSpace(form.EndTime) == "" {
		return nil, domain.NewValidationError("End time cannot be empty.")
	}

	start, err := parseInstant(form.StartTime)
	if err != nil {
		return nil, domain.NewValidationError("Start time is not a valid date.")
	}
	end, err := parseInstant(form.EndTime)
	if err != nil {
		return nil, domain.NewValidationError("End time is not a valid date.")
	}
	if !start.Before(end) {
		return nil, domain.NewValidationError("End time must be after the start time.")
	}

	var deadline *time.Time
	if strings.TrimSpace(form.JoinDeadline) != "" {
		d, err := parseInstant(form.JoinDeadline)
		if err != nil {
			return nil, domain.NewValidationError("Join deadline is not a valid date.")
		}
		if !d.Before(start) {
			return nil, domain.NewValidationError("Join deadline must be before the start time.")
		}
		deadline = &d
	}

	var limit *int
	if form.AttendeeLimitEnabled {
		if form.AttendeeLimit <= 0 {
			return nil, domain.NewValidationError("Attendee limit must be a positive number.")
		}
		if form.CurrentAcceptedCount != nil && form.AttendeeLimit < *form.CurrentAcceptedCount {
			return nil, &domain.CapacityConflict{
				AttendeeLimit: form.AttendeeLimit,
				AcceptedCount: *form.CurrentAcceptedCount,
			}
		}
		l := form.AttendeeLimit
		limit = &l
	}

	var agenda []domain.AgendaItem
	if form.AgendaEnabled {
		for _, item := range form.Agenda {
			if strings.TrimSpace(item.Title) == "" {
				return nil, domain.NewValidationError("Agenda items must have a title.")
			}
			if !item.StartTime.Before(item.EndTime) {
				return nil, domain.NewValidationError("Agenda item end time must be after its start time.")
			}
		}
		agenda = form.Agenda
	}

	scope := domain.DepartmentScope{
		AllDepartments: form.AllDepartments,
		DepartmentIDs:  form.DepartmentIDs,
	}
	if !scope.Valid() {
		return nil, domain.NewValidationError("Select all departments or at least one department.")
	}

	return &domain.EventDraft{
		Name:                 strings.TrimSpace(form.Name),
		Description:          form.Description,
		Location:             form.Location,
		StartTime:            start,
		EndTime:              end,
		JoinDeadline:         deadline,
		AttendeeLimit:        limit,
		JoinApprovalRequired: form.JoinApprovalRequired,
		DepartmentScope:      scope,
		Agenda:               agenda,
	}, nil
}

// parseInstant accepts ISO-8601 instants, with or without an explicit offset.
func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", s)
}
