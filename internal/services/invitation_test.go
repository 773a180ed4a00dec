package services

import (
	"context"
	"testing"

	"organizerdashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInvitationBatch(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.InvitationRow
		wantErrs domain.InvitationRowErrors
	}{
		{
			name:     "valid row",
			row:      domain.InvitationRow{Email: "a@b.com", DepartmentID: 1},
			wantErrs: domain.InvitationRowErrors{},
		},
		{
			name:     "empty email",
			row:      domain.InvitationRow{Email: "", DepartmentID: 1},
			wantErrs: domain.InvitationRowErrors{EmailError: MsgEmailEmpty},
		},
		{
			name:     "no at sign",
			row:      domain.InvitationRow{Email: "bad", DepartmentID: 1},
			wantErrs: domain.InvitationRowErrors{EmailError: MsgEmailInvalid},
		},
		{
			name:     "no dot after at",
			row:      domain.InvitationRow{Email: "a@bcom", DepartmentID: 1},
			wantErrs: domain.InvitationRowErrors{EmailError: MsgEmailInvalid},
		},
		{
			name:     "whitespace in email",
			row:      domain.InvitationRow{Email: "a b@c.com", DepartmentID: 1},
			wantErrs: domain.InvitationRowErrors{EmailError: MsgEmailInvalid},
		},
		{
			name:     "unselected department",
			row:      domain.InvitationRow{Email: "a@b.com", DepartmentID: 0},
			wantErrs: domain.InvitationRowErrors{DepartmentError: MsgDepartmentRequired},
		},
		{
			name:     "both fields invalid",
			row:      domain.InvitationRow{Email: "bad", DepartmentID: 0},
			wantErrs: domain.InvitationRowErrors{EmailError: MsgEmailInvalid, DepartmentError: MsgDepartmentRequired},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateInvitationBatch([]domain.InvitationRow{tt.row})
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantErrs, errs[0])
		})
	}
}

func TestValidateInvitationBatch_RowsIndependent(t *testing.T) {
	// Scenario: a clean row followed by a doubly invalid row. The bad row
	// never contaminates the good one, and vice versa.
	rows := []domain.InvitationRow{
		{Email: "a@b.com", DepartmentID: 1},
		{Email: "bad", DepartmentID: 0},
	}
	errs := ValidateInvitationBatch(rows)
	require.Len(t, errs, 2)
	assert.False(t, errs[0].HasErrors())
	assert.Equal(t, MsgEmailInvalid, errs[1].EmailError)
	assert.Equal(t, MsgDepartmentRequired, errs[1].DepartmentError)
}

func TestValidateInvitationBatch_DuplicatesNotDeduplicated(t *testing.T) {
	rows := []domain.InvitationRow{
		{Email: "a@b.com", DepartmentID: 1},
		{Email: "a@b.com", DepartmentID: 2},
	}
	errs := ValidateInvitationBatch(rows)
	require.Len(t, errs, 2)
	assert.False(t, errs[0].HasErrors())
	assert.False(t, errs[1].HasErrors())
}

func TestInvitationService_SendBulk(t *testing.T) {
	fake := &fakeOrganizerAPI{}
	svc := NewInvitationService(fake, testLogger, 77)

	rows := []domain.InvitationRow{
		{Email: "a@b.com", DepartmentID: 1},
		{Email: "c@d.org", DepartmentID: 2},
	}
	message, rowErrs, err := svc.SendBulk(context.Background(), rows)
	require.NoError(t, err)
	assert.Nil(t, rowErrs)
	assert.Equal(t, "Invitations sent.", message)
	assert.Equal(t, 1, fake.sendInvitationsCalls)
	assert.Equal(t, int64(77), fake.lastSentCompanyID)
	assert.Equal(t, rows, fake.lastSentRows)
}

func TestInvitationService_SendBulk_InvalidRowBlocksSubmission(t *testing.T) {
	fake := &fakeOrganizerAPI{}
	svc := NewInvitationService(fake, testLogger, 77)

	rows := []domain.InvitationRow{
		{Email: "a@b.com", DepartmentID: 1},
		{Email: "bad", DepartmentID: 0},
	}
	message, rowErrs, err := svc.SendBulk(context.Background(), rows)
	assert.Empty(t, message)
	require.Len(t, rowErrs, 2)
	assert.False(t, rowErrs[0].HasErrors())
	assert.True(t, rowErrs[1].HasErrors())
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Zero(t, fake.sendInvitationsCalls, "no network call for an invalid batch")
}

func TestInvitationService_SendBulk_UpstreamError(t *testing.T) {
	fake := &fakeOrganizerAPI{
		sendInvitationsFn: func(_ context.Context, _ []domain.InvitationRow, _ int64) (string, error) {
			return "", &domain.ServerRejection{Op: "send invitations", StatusCode: 400, Message: "Company has no seats left."}
		},
	}
	svc := NewInvitationService(fake, testLogger, 77)

	_, _, err := svc.SendBulk(context.Background(), []domain.InvitationRow{{Email: "a@b.com", DepartmentID: 1}})
	var rejection *domain.ServerRejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "Company has no seats left.", rejection.Message)
}
