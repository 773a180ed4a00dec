package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"organizerdashboard/internal/delivery/http/controllers"
	"organizerdashboard/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all dashboard routes.
func NewRouter(
	dashboard *controllers.DashboardController,
	events *controllers.EventController,
	admission *controllers.AdmissionController,
	invitations *controllers.InvitationController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireBearer()

	// Dashboard reads
	mux.HandleFunc("GET /dashboard", auth(dashboard.GetDashboard))
	mux.HandleFunc("GET /dashboard/events/{eventID}/participants", auth(dashboard.ListParticipants))

	// Event writes
	mux.HandleFunc("POST /dashboard/events", auth(events.CreateEvent))
	mux.HandleFunc("PUT /dashboard/events/{eventID}", auth(events.UpdateEvent))
	mux.HandleFunc("DELETE /dashboard/events/{eventID}", auth(events.DeleteEvent))

	// Participant admission
	mux.HandleFunc("PUT /dashboard/events/{eventID}/participants/{participantID}/review", auth(admission.ReviewParticipant))

	// Invitations
	mux.HandleFunc("POST /dashboard/invitations", auth(invitations.SendInvitations))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
