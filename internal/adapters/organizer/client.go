package organizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"organizerdashboard/internal/domain"
)

type organizerClient struct {
	client  *http.Client
	baseURL string
	creds   domain.CredentialProvider
}

// NewClient returns an OrganizerAPI that calls the remote event-organizer
// service. The bearer credential for every request comes from creds; a nil
// http.Client falls back to http.DefaultClient.
func NewClient(client *http.Client, baseURL string, creds domain.CredentialProvider) domain.OrganizerAPI {
	if client == nil {
		client = http.DefaultClient
	}
	return &organizerClient{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		creds:   creds,
	}
}

// do sends one authenticated request and decodes a 2xx JSON body into out.
// Transport failures map to NetworkFailure; non-2xx responses map to
// ServerRejection carrying the backend message when one is present.
func (c *organizerClient) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	token, err := c.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("%s: credential: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.NetworkFailure{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ServerRejection{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp.Body),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// decodeErrorMessage extracts a backend-supplied message from an error body.
// Accepts either {"message": "..."} or a bare string body; returns "" when
// neither is present so callers fall back to a generic message.
func decodeErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func (c *organizerClient) ListMyEvents(ctx context.Context, filter domain.WindowFilter) (*domain.EventListResult, error) {
	path := "/event-organizer/my-events"
	if filter != domain.WindowAll {
		path += "?filter=" + url.QueryEscape(string(filter))
	}
	var dto eventListDTO
	if err := c.do(ctx, "list events", http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}

func (c *organizerClient) ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	path := fmt.Sprintf("/event-organizer/my-events/%d/participants", eventID)
	var dtos []participantDTO
	if err := c.do(ctx, "list participants", http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	participants := make([]domain.Participant, 0, len(dtos))
	for i, dto := range dtos {
		p, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list participants: row %d: %w", i, err)
		}
		participants = append(participants, p)
	}
	return participants, nil
}

func (c *organizerClient) CreateEvent(ctx context.Context, draft *domain.EventDraft) (*domain.Event, error) {
	var dto eventDTO
	if err := c.do(ctx, "create event", http.MethodPost, "/event-organizer/create-event", draftToDTO(draft), &dto); err != nil {
		return nil, err
	}
	event, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (c *organizerClient) UpdateEvent(ctx context.Context, eventID int64, draft *domain.EventDraft) (*domain.Event, error) {
	path := fmt.Sprintf("/event-organizer/update-event/%d", eventID)
	var dto *eventDTO
	if err := c.do(ctx, "update event", http.MethodPut, path, draftToDTO(draft), &dto); err != nil {
		return nil, err
	}
	// The service answers a failed update with a JSON null body.
	if dto == nil {
		return nil, &domain.ServerRejection{Op: "update event", StatusCode: http.StatusOK, Message: "The event could not be updated."}
	}
	event, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (c *organizerClient) DeleteEvent(ctx context.Context, eventID int64) (bool, error) {
	path := fmt.Sprintf("/event-organizer/delete-event/%d", eventID)
	var ok bool
	if err := c.do(ctx, "delete event", http.MethodDelete, path, nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *organizerClient) ReviewParticipant(ctx context.Context, eventID, participantID int64, status domain.ParticipantStatus) (bool, error) {
	path := fmt.Sprintf("/event-organizer/events/%d/participants/%d/status?status=%s",
		eventID, participantID, url.QueryEscape(string(status)))
	var ok bool
	if err := c.do(ctx, "review participant", http.MethodPut, path, nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *organizerClient) SendInvitations(ctx context.Context, rows []domain.InvitationRow, companyID int64) (string, error) {
	wireRows := make([]invitationRowDTO, 0, len(rows))
	for _, row := range rows {
		wireRows = append(wireRows, invitationRowDTO(row))
	}
	body := sendInvitationsRequest{Emails: wireRows, CompanyID: companyID}
	var message string
	if err := c.do(ctx, "send invitations", http.MethodPost, "/invitation/sendBulk", body, &message); err != nil {
		return "", err
	}
	return message, nil
}
