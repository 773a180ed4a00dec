package domain

// InvitationRow is one entry of a bulk invitation list. DepartmentID 0 is the
// "unselected" sentinel and is always invalid.
// swagger:model InvitationRow
type InvitationRow struct {
	Email        string `json:"email"`
	DepartmentID int64  `json:"department_id"`
}

// InvitationRowErrors annotates one InvitationRow with per-field errors.
// A row with both fields empty is eligible for submission.
// swagger:model InvitationRowErrors
type InvitationRowErrors struct {
	EmailError      string `json:"email_error,omitempty"`
	DepartmentError string `json:"department_error,omitempty"`
}

// HasErrors reports whether the row carries any error.
func (e InvitationRowErrors) HasErrors() bool {
	return e.EmailError != "" || e.DepartmentError != ""
}
