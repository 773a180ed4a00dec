package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"organizerdashboard/internal/delivery/http/helpers"
	"organizerdashboard/internal/domain"
)

// EventController serves the organizer's event write path.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// EventFormRequest is the request body for creating or updating an event.
// Instants are ISO-8601 strings; the temporal and capacity rules are checked
// before any upstream call.
// swagger:model EventFormRequest
type EventFormRequest struct {
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	Location             string              `json:"location"`
	StartTime            string              `json:"start_time"`
	EndTime              string              `json:"end_time"`
	JoinDeadline         string              `json:"join_deadline,omitempty"`
	AttendeeLimitEnabled bool                `json:"attendee_limit_enabled"`
	AttendeeLimit        int                 `json:"attendee_limit"`
	JoinApprovalRequired bool                `json:"join_approval_required"`
	AgendaEnabled        bool                `json:"agenda_enabled"`
	Agenda               []domain.AgendaItem `json:"agenda,omitempty"`
	AllDepartments       bool                `json:"all_departments"`
	DepartmentIDs        []int64             `json:"department_ids,omitempty"`
}

// Validate implements Validator. Structural checks only; the full temporal
// and capacity rules run in the service so their first-failure ordering and
// messages stay in one place.
func (e EventFormRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Name) == "" && strings.TrimSpace(e.Description) == "" &&
		strings.TrimSpace(e.StartTime) == "" && strings.TrimSpace(e.EndTime) == "" {
		errs = append(errs, "request body is empty")
	}
	return errs
}

func (e EventFormRequest) toForm() domain.EventForm {
	return domain.EventForm{
		Name:                 e.Name,
		Description:          e.Description,
		Location:             e.Location,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		JoinDeadline:         e.JoinDeadline,
		AttendeeLimitEnabled: e.AttendeeLimitEnabled,
		AttendeeLimit:        e.AttendeeLimit,
		JoinApprovalRequired: e.JoinApprovalRequired,
		AgendaEnabled:        e.AgendaEnabled,
		Agenda:               e.Agenda,
		AllDepartments:       e.AllDepartments,
		DepartmentIDs:        e.DepartmentIDs,
	}
}

// EventSuccessResponse is the success envelope for event create/update (201/200).
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateEvent godoc
// @Summary Create an event
// @Description Validates the draft locally (required fields, start before end, deadline before start, positive limit, agenda windows, department scope) and submits it only when every rule passes. A failing rule returns its message and issues no upstream call.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventFormRequest true "Event draft"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /dashboard/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventFormRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.toForm())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Re-runs the full draft validation against the live participant snapshot: lowering the attendee limit below the current accepted count is rejected with a capacity-specific message and no upstream call.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param event body EventFormRequest true "Event draft"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: capacity_conflict"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /dashboard/events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil || eventID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return
	}
	var req EventFormRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, req.toForm())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEventResponse is the response body for DELETE /dashboard/events/{eventID}.
// swagger:model DeleteEventResponse
type DeleteEventResponse struct {
	Deleted bool `json:"deleted"`
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Forwards the deletion to the organizer service; cascading removal of participant links is the remote service's concern.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains {deleted}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /dashboard/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil || eventID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return
	}
	deleted, err := c.Service.DeleteEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Deleted: deleted})
}
