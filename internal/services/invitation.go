package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"organizerdashboard/internal/domain"
)

// Per-row invitation error messages shown on the invitation screen.
const (
	MsgEmailEmpty         = "Email cannot be empty."
	MsgEmailInvalid       = "Please enter a valid email address."
	MsgDepartmentRequired = "Please select a department."
)

// invitationEmailRegex matches local@domain.tld: at least one @, at least one
// dot after it, no whitespace.
var invitationEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s]+\.[^\s]+$`)

// ValidateInvitationBatch annotates each row of a bulk invitation list with
// per-field errors. Rows are validated independently; the result is parallel
// to the input. The validator never blocks submission itself, it only
// annotates: gating on the annotations is the caller's concern.
func ValidateInvitationBatch(rows []domain.InvitationRow) []domain.InvitationRowErrors {
	errs := make([]domain.InvitationRowErrors, len(rows))
	for i, row := range rows {
		if row.Email == "" {
			errs[i].EmailError = MsgEmailEmpty
		} else if !invitationEmailRegex.MatchString(row.Email) {
			errs[i].EmailError = MsgEmailInvalid
		}
		if row.DepartmentID == 0 {
			errs[i].DepartmentError = MsgDepartmentRequired
		}
	}
	return errs
}

type invitationService struct {
	api       domain.OrganizerAPI
	logger    *slog.Logger
	companyID int64
}

// NewInvitationService creates an InvitationService that submits batches for
// the given company.
func NewInvitationService(api domain.OrganizerAPI, logger *slog.Logger, companyID int64) domain.InvitationService {
	return &invitationService{api: api, logger: logger, companyID: companyID}
}

// SendBulk validates the batch and submits it only when every row is clean.
// When any row carries an error the annotated rows are returned and no
// network call is made. Rows are not deduplicated by email; the backend
// receives the batch as entered.
func (s *invitationService) SendBulk(ctx context.Context, rows []domain.InvitationRow) (string, []domain.InvitationRowErrors, error) {
	rowErrs := ValidateInvitationBatch(rows)
	for _, re := range rowErrs {
		if re.HasErrors() {
			return "", rowErrs, domain.NewValidationError("The invitation list contains invalid rows.")
		}
	}
	message, err := s.api.SendInvitations(ctx, rows, s.companyID)
	if err != nil {
		return "", nil, fmt.Errorf("send invitations: %w", err)
	}
	s.logger.InfoContext(ctx, "invitation batch sent", "rows", len(rows), "company_id", s.companyID)
	return message, nil, nil
}
