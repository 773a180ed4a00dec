package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"organizerdashboard/internal/delivery/http/helpers"
	"organizerdashboard/internal/domain"
)

// writeDomainError maps the error taxonomy to HTTP responses:
// local validation failures stay 4xx with their human-readable message,
// upstream rejections pass the backend message through (4xx statuses
// preserved, others become 502), transport failures become a generic 502.
// Prior state is never mutated by an error path; the screen keeps its input.
func writeDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var cc *domain.CapacityConflict
	if errors.As(err, &cc) {
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeCapacity, cc.Error())
		return
	}
	if msg, ok := domain.ValidationMessage(err); ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, msg)
		return
	}
	if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if errors.Is(err, domain.ErrMissingCredential) || errors.Is(err, domain.ErrCredentialExpired) {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, err.Error())
		return
	}

	var rejection *domain.ServerRejection
	if errors.As(err, &rejection) {
		status := http.StatusBadGateway
		if rejection.StatusCode >= 400 && rejection.StatusCode < 500 {
			status = rejection.StatusCode
		}
		helpers.WriteJSONError(w, status, helpers.ErrCodeUpstream, rejection.Error())
		return
	}
	var network *domain.NetworkFailure
	if errors.As(err, &network) {
		logger.ErrorContext(r.Context(), "organizer service unreachable", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstream, "The organizer service could not be reached.")
		return
	}

	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
