package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"organizerdashboard/internal/delivery/http/helpers"
	"organizerdashboard/internal/domain"
)

// InvitationController serves bulk invitation submission.
type InvitationController struct {
	Logger      *slog.Logger
	Invitations domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, invitations domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:      logger,
		Invitations: invitations,
	}
}

// SendInvitationsRequest is the request body for POST /dashboard/invitations.
// swagger:model SendInvitationsRequest
type SendInvitationsRequest struct {
	Rows []domain.InvitationRow `json:"rows"`
}

// Validate implements Validator. Per-row annotation happens in the service;
// only an empty batch is rejected here.
func (s SendInvitationsRequest) Validate() []string {
	var errs []string
	if len(s.Rows) == 0 {
		errs = append(errs, "rows must not be empty")
	}
	return errs
}

// SendInvitationsResponse is the response body for POST /dashboard/invitations.
// On success Message holds the backend's outcome message; when any row is
// invalid RowErrors is parallel to the submitted rows and nothing was sent.
// swagger:model SendInvitationsResponse
type SendInvitationsResponse struct {
	Message   string                       `json:"message,omitempty"`
	RowErrors []domain.InvitationRowErrors `json:"row_errors,omitempty"`
}

// SendInvitations godoc
// @Summary Send a bulk invitation batch
// @Description Validates every row (email format, department selected) independently. When any row is invalid the parallel error list is returned with 422 and no upstream call is made; otherwise the batch is forwarded to the invitation service.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendInvitationsRequest true "Invitation rows"
// @Success 200 {object} helpers.APIResponse "data contains the backend message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "data contains row_errors parallel to the submitted rows"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /dashboard/invitations [post]
func (c *InvitationController) SendInvitations(w http.ResponseWriter, r *http.Request) {
	var req SendInvitationsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	message, rowErrs, err := c.Invitations.SendBulk(r.Context(), req.Rows)
	if err != nil {
		var ve *domain.ValidationError
		if len(rowErrs) > 0 && errors.As(err, &ve) {
			// The annotations are data the invitation screen renders
			// next to each row; the status marks the batch unsent.
			helpers.WriteJSONSuccess(w, http.StatusUnprocessableEntity, SendInvitationsResponse{RowErrors: rowErrs})
			return
		}
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SendInvitationsResponse{Message: message})
}
