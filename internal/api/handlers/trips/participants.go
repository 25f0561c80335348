package trips

import (
	"encoding/json"
	"net/http"

	"tripmate/pkg/utils"
)

// FUNC TO REMOVE A PARTICIPANT FROM A TRIP
func RemoveParticipantHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
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
		UserID int `json:"user_id"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.UserID <= 0 {
		utils.WriteError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	if err := membershipSvc.RemoveParticipant(r.Context(), p.ID, tripID, req.UserID); err != nil {
		utils.WriteErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Participant removed from trip",
	})
}

// FUNC TO LEAVE A TRIP
func LeaveTripHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
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

	if err := membershipSvc.Leave(r.Context(), p.ID, tripID); err != nil {
		utils.WriteErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "You have left the trip",
	})
}
