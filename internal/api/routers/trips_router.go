package routers

import (
	"net/http"

	"tripmate/internal/api/handlers/trips"
)

func tripsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/trips/create", trips.CreateTripHandler)

	mux.HandleFunc("/trips/", trips.ListTripsHandler)

	mux.HandleFunc("GET /trips/{id}", trips.GetTripHandler)

	mux.HandleFunc("PATCH /trips/{id}", trips.UpdateTripHandler)

	mux.HandleFunc("DELETE /trips/{id}", trips.DeleteTripHandler)

	mux.HandleFunc("POST /trips/{id}/invites", trips.CreateInviteHandler)

	mux.HandleFunc("/trips/{tripId}/invites/{inviteId}/resend", trips.ResendInviteHandler)

	mux.HandleFunc("/trips/invites/accept/{token}", trips.AcceptInviteHandler)

	mux.HandleFunc("DELETE /trips/invites/{id}", trips.CancelInviteHandler)

	mux.HandleFunc("/trips/{id}/invites/pending", trips.ListPendingInvitesHandler)

	mux.HandleFunc("/trips/{id}/participants/remove", trips.RemoveParticipantHandler)

	mux.HandleFunc("/trips/{id}/leave", trips.LeaveTripHandler)

	mux.HandleFunc("POST /trips/{id}/expenses", trips.CreateExpenseHandler)

	mux.HandleFunc("GET /trips/{id}/expenses", trips.ListExpensesHandler)

	mux.HandleFunc("/trips/{id}/stats", trips.GetTripStatsHandler)

	return mux
}
