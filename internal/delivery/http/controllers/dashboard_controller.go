package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"organizerdashboard/internal/delivery/http/helpers"
	"organizerdashboard/internal/domain"
	"organizerdashboard/internal/services"
)

// DashboardController serves the aggregated organizer dashboard.
type DashboardController struct {
	Logger      *slog.Logger
	Aggregation domain.AggregationService
}

func NewDashboardController(logger *slog.Logger, aggregation domain.AggregationService) *DashboardController {
	return &DashboardController{
		Logger:      logger,
		Aggregation: aggregation,
	}
}

// EventView is one dashboard event with its derived capacity summary.
// swagger:model EventView
type EventView struct {
	domain.Event
	Capacity domain.CapacitySummary `json:"capacity"`
}

// DashboardResponse is the response body for GET /dashboard.
// swagger:model DashboardResponse
type DashboardResponse struct {
	Events               []EventView              `json:"events"`
	Counts               domain.EventCounts       `json:"counts"`
	AcceptedParticipants domain.ParticipantCounts `json:"accepted_participants"`
}

// DashboardSuccessResponse is the success envelope for GET /dashboard (200).
type DashboardSuccessResponse struct {
	Data  DashboardResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetDashboard godoc
// @Summary Load the organizer dashboard
// @Description Fetches the organizer's events with participants attached per event, rollup counts, and a derived capacity summary per event. Events whose participant fetch failed are still returned, with participants_loaded false.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param filter query string false "Window filter" Enums(thisWeek, thisMonth)
// @Success 200 {object} controllers.DashboardSuccessResponse "data contains events and rollups"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	filter := domain.WindowFilter(r.URL.Query().Get("filter"))
	if !filter.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "filter must be thisWeek, thisMonth, or empty")
		return
	}
	data, err := c.Aggregation.LoadEvents(r.Context(), filter)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	views := make([]EventView, 0, len(data.Events))
	for i := range data.Events {
		ev := data.Events[i]
		views = append(views, EventView{
			Event:    ev,
			Capacity: services.DeriveCapacity(&ev, ev.Participants),
		})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DashboardResponse{
		Events:               views,
		Counts:               data.Counts,
		AcceptedParticipants: data.AcceptedParticipants,
	})
}

// ParticipantListResponse is the response body for the participant listing.
// swagger:model ParticipantListResponse
type ParticipantListResponse struct {
	Participants []domain.Participant         `json:"participants"`
	Capacity     domain.CapacitySummary       `json:"capacity"`
	Statistics   domain.ParticipantStatistics `json:"statistics"`
	Pagination   helpers.PaginationMeta       `json:"pagination"`
}

// ParticipantListSuccessResponse is the success envelope for the participant listing (200).
type ParticipantListSuccessResponse struct {
	Data  ParticipantListResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ListParticipants godoc
// @Summary List an event's participants
// @Description Returns the event's participants (paginated) together with the accepted count, available seats, and demographic statistics over the full list.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ParticipantListSuccessResponse "data contains participants, capacity, statistics"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /dashboard/events/{eventID}/participants [get]
func (c *DashboardController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil || eventID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return
	}
	params := helpers.ParsePagination(r)

	participants, err := c.Aggregation.LoadParticipants(r.Context(), eventID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	// Capacity here reflects only the accepted count; the attendee limit
	// lives on the event, which this endpoint does not re-fetch.
	capacity := domain.CapacitySummary{AcceptedCount: services.CountAccepted(participants)}
	stats := services.DeriveStatistics(participants)

	total := len(participants)
	start, end := params.Slice(total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ParticipantListResponse{
		Participants: participants[start:end],
		Capacity:     capacity,
		Statistics:   stats,
		Pagination:   helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
