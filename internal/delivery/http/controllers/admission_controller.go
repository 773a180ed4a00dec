package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"organizerdashboard/internal/delivery/http/helpers"
	"organizerdashboard/internal/domain"
)

// AdmissionController serves participant admission reviews.
type AdmissionController struct {
	Logger    *slog.Logger
	Admission domain.AdmissionService
}

func NewAdmissionController(logger *slog.Logger, admission domain.AdmissionService) *AdmissionController {
	return &AdmissionController{
		Logger:    logger,
		Admission: admission,
	}
}

// ReviewRequest is the request body for a participant review.
// swagger:model ReviewRequest
type ReviewRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator. Only ACCEPTED and REJECTED are reachable
// from PENDING; anything else is rejected before the service runs.
func (r ReviewRequest) Validate() []string {
	var errs []string
	if r.Status == "" {
		errs = append(errs, "status is required")
	}
	return errs
}

// ReviewResponse is the response body for a participant review.
// swagger:model ReviewResponse
type ReviewResponse struct {
	Success bool `json:"success"`
}

// ReviewParticipant godoc
// @Summary Review a pending participant
// @Description Moves a PENDING participant to ACCEPTED or REJECTED. Both targets are terminal. A failed remote call returns success=false semantics via the error envelope and the displayed status must stay unchanged.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param participantID path int true "Participant ID"
// @Param body body ReviewRequest true "Target status (ACCEPTED or REJECTED)"
// @Success 200 {object} helpers.APIResponse "data contains {success}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /dashboard/events/{eventID}/participants/{participantID}/review [put]
func (c *AdmissionController) ReviewParticipant(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil || eventID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return
	}
	participantID, err := strconv.ParseInt(r.PathValue("participantID"), 10, 64)
	if err != nil || participantID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid participantID")
		return
	}
	var req ReviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ok, err := c.Admission.Review(r.Context(), eventID, participantID, domain.ParticipantStatus(req.Status))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ReviewResponse{Success: ok})
}
