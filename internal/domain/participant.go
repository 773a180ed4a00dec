package domain

// ParticipantStatus is the admission state of a participant within an event.
type ParticipantStatus string

const (
	StatusPending  ParticipantStatus = "PENDING"
	StatusAccepted ParticipantStatus = "ACCEPTED"
	StatusRejected ParticipantStatus = "REJECTED"
)

// statusTransitions is the single admission state machine: PENDING is the only
// source state, ACCEPTED and REJECTED are terminal.
var statusTransitions = map[ParticipantStatus]map[ParticipantStatus]bool{
	StatusPending: {
		StatusAccepted: true,
		StatusRejected: true,
	},
	StatusAccepted: {},
	StatusRejected: {},
}

// Valid reports whether s is a known participant status.
func (s ParticipantStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether no further transition is possible from s.
func (s ParticipantStatus) Terminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the transition s -> next is allowed.
func (s ParticipantStatus) CanTransitionTo(next ParticipantStatus) bool {
	return statusTransitions[s][next]
}

// Gender is a participant's reported gender; empty means unknown and is
// excluded from all statistics counters.
type Gender string

const (
	GenderUnknown Gender = ""
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderOther   Gender = "OTHER"
)

// EventLink references an event a participant has joined.
// swagger:model EventLink
type EventLink struct {
	EventID   int64  `json:"event_id"`
	EventName string `json:"event_name"`
}

// Participant is a member admitted to (or pending admission to) an event.
// swagger:model Participant
type Participant struct {
	ParticipantID    int64             `json:"participant_id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	DepartmentName   string            `json:"department_name"`
	Status           ParticipantStatus `json:"status"`
	JoinedEventCount int               `json:"joined_event_count"`
	EventLinks       []EventLink       `json:"event_links,omitempty"`
	Age              *int              `json:"age,omitempty"`
	Gender           Gender            `json:"gender,omitempty"`
}

// CapacitySummary is the derived seat availability for one event.
// AvailableSeats is nil exactly when the event has no attendee limit.
// swagger:model CapacitySummary
type CapacitySummary struct {
	AvailableSeats *int `json:"available_seats"`
	AcceptedCount  int  `json:"accepted_count"`
}

// ParticipantStatistics are demographic rollups over a participant list.
// Age fields are nil when no participant has a defined age.
// swagger:model ParticipantStatistics
type ParticipantStatistics struct {
	AverageAge  *float64 `json:"average_age"`
	HighestAge  *int     `json:"highest_age"`
	LowestAge   *int     `json:"lowest_age"`
	MaleCount   int      `json:"male_count"`
	FemaleCount int      `json:"female_count"`
	OtherCount  int      `json:"other_count"`
}
