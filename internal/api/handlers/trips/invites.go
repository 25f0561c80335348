package trips

import (
	"encoding/json"
	"errors"
	"net/http"

	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

// FUNC TO INVITE SOMEONE TO A TRIP
func CreateInviteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}
	tripID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		Email string `json:"email"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	invite, link, err := inviteSvc.Create(r.Context(), p, tripID, req.Email)
	if err != nil && !errors.Is(err, services.ErrInviteEmailFailed) {
		utils.WriteErr(w, err)
		return
	}

	message := "Invitation sent successfully"
	if err != nil {
		// Row committed, only delivery failed. The caller still gets the
		// link to share by hand.
		message = err.Error()
	}

	utils.WriteJSONStatus(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": message,
		"data": map[string]interface{}{
			"invite":      invite,
			"invite_link": link,
		},
	})
}

// FUNC TO RESEND AN INVITATION
func ResendInviteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}
	tripID, ok := pathID(w, r, "tripId")
	if !ok {
		return
	}
	inviteID, ok := pathID(w, r, "inviteId")
	if !ok {
		return
	}

	invite, link, err := inviteSvc.Resend(r.Context(), p, tripID, inviteID)
	if err != nil && !errors.Is(err, services.ErrInviteEmailFailed) {
		utils.WriteErr(w, err)
		return
	}

	message := "Invitation resent successfully"
	if err != nil {
		message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": message,
		"data": map[string]interface{}{
			"invite":      invite,
			"invite_link": link,
		},
	})
}

// FUNC TO CANCEL A PENDING INVITATION
func CancelInviteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}
	inviteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := inviteSvc.Cancel(r.Context(), p, inviteID); err != nil {
		utils.WriteErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Invitation cancelled",
	})
}

// FUNC TO ACCEPT AN INVITATION
func AcceptInviteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}

	token := r.PathValue("token")
	if token == "" {
		utils.WriteError(w, "invalid invite token", http.StatusBadRequest)
		return
	}

	tripID, err := inviteSvc.Accept(r.Context(), p, token)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Invitation accepted, welcome aboard!",
		"data": map[string]interface{}{
			"trip_id": tripID,
		},
	})
}

// FUNC TO LIST PENDING INVITATIONS FOR A TRIP
func ListPendingInvitesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}
	tripID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	invites, err := inviteSvc.ListPending(r.Context(), p, tripID)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(invites),
		"data":   invites,
	})
}
