package trips

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tripmate/internal/models"
	"tripmate/internal/permissions"
	"tripmate/internal/services"
	"tripmate/internal/store"
	"tripmate/pkg/utils"
)

var (
	dataStore     store.Store
	inviteSvc     *services.InviteService
	membershipSvc *services.MembershipService
	statsSvc      *services.StatsService
)

// Setup wires the handlers to the persistence layer and the trip services.
// Called once at startup.
func Setup(s store.Store, invites *services.InviteService, membership *services.MembershipService, stats *services.StatsService) {
	dataStore = s
	inviteSvc = invites
	membershipSvc = membership
	statsSvc = stats
}

func principal(w http.ResponseWriter, r *http.Request) (utils.Principal, bool) {
	p, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return utils.Principal{}, false
	}
	return p, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// getTripAsMember loads the trip and verifies membership. Non-members get the
// same not-found answer as a missing trip.
func getTripAsMember(w http.ResponseWriter, r *http.Request, tripID, userID int) (models.Trip, bool) {
	trip, err := dataStore.Trips().GetByID(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrTripNotFound)
			return models.Trip{}, false
		}
		utils.Logger.Errorf("failed to load trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return models.Trip{}, false
	}

	isMember, err := dataStore.Members().IsMember(r.Context(), tripID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to check membership on trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return models.Trip{}, false
	}
	if permissions.CanActAsMember(isMember) != permissions.Allowed {
		utils.WriteErr(w, services.ErrTripNotFound)
		return models.Trip{}, false
	}
	return trip, true
}

// FUNC TO CREATE A TRIP
func CreateTripHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}

	var newTrip models.Trip
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&newTrip); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	newTrip.Name = strings.TrimSpace(newTrip.Name)
	if newTrip.Name == "" {
		utils.WriteError(w, "trip name is required", http.StatusBadRequest)
		return
	}
	if len(newTrip.Name) > 100 || len(newTrip.Description) > 500 {
		utils.WriteError(w, "name or description too long", http.StatusBadRequest)
		return
	}

	newTrip.OwnerID = p.ID

	// The owner is a member from the first read, there is no window where
	// the trip exists without its owner row.
	err := dataStore.WithTx(r.Context(), func(tx store.Store) error {
		if err := tx.Trips().Create(r.Context(), &newTrip); err != nil {
			return err
		}
		_, err := tx.Members().AddMember(r.Context(), newTrip.ID, p.ID)
		return err
	})
	if err != nil {
		utils.Logger.Errorf("failed to create trip: %v", err)
		utils.WriteError(w, "failed to create trip, try again later!", http.StatusInternalServerError)
		return
	}

	utils.WriteJSONStatus(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Trip created successfully",
		"data":    newTrip,
	})
}

// FUNC TO LIST MY TRIPS
func ListTripsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}

	trips, err := dataStore.Trips().ListByMember(r.Context(), p.ID)
	if err != nil {
		utils.Logger.Errorf("failed to list trips for user %d: %v", p.ID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(trips),
		"data":   trips,
	})
}

// FUNC TO GET A SINGLE TRIP
func GetTripHandler(w http.ResponseWriter, r *http.Request) {
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

	trip, ok := getTripAsMember(w, r, tripID, p.ID)
	if !ok {
		return
	}

	memberIDs, err := dataStore.Members().ListMemberIDs(r.Context(), tripID)
	if err != nil {
		utils.Logger.Errorf("failed to list members of trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	memberCount, err := dataStore.Members().CountMembers(r.Context(), tripID)
	if err != nil {
		utils.Logger.Errorf("failed to count members of trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"trip":         trip,
			"members":      memberIDs,
			"member_count": memberCount,
		},
	})
}

// FUNC TO UPDATE TRIP DETAILS
func UpdateTripHandler(w http.ResponseWriter, r *http.Request) {
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
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
		StartDate   *string `json:"start_date"`
		EndDate     *string `json:"end_date"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	trip, err := dataStore.Trips().GetByID(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrTripNotFound)
			return
		}
		utils.Logger.Errorf("failed to load trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if permissions.CanManageTrip(p.ID, trip.OwnerID) != permissions.Allowed {
		utils.WriteErr(w, services.ErrNotOwner)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			utils.WriteError(w, "name cannot be empty or whitespace", http.StatusBadRequest)
			return
		}
		trip.Name = name
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.Location != nil {
		trip.Location = *req.Location
	}
	if req.StartDate != nil {
		trip.StartDate = models.NullString(*req.StartDate)
	}
	if req.EndDate != nil {
		trip.EndDate = models.NullString(*req.EndDate)
	}
	if len(trip.Name) > 100 || len(trip.Description) > 500 {
		utils.WriteError(w, "name or description too long", http.StatusBadRequest)
		return
	}

	if err := dataStore.Trips().Update(r.Context(), trip); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrTripNotFound)
			return
		}
		utils.Logger.Errorf("failed to update trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Trip updated successfully",
		"data":    trip,
	})
}

// FUNC TO DELETE A TRIP
func DeleteTripHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
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

	trip, err := dataStore.Trips().GetByID(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrTripNotFound)
			return
		}
		utils.Logger.Errorf("failed to load trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if permissions.CanManageTrip(p.ID, trip.OwnerID) != permissions.Allowed {
		utils.WriteErr(w, services.ErrNotOwner)
		return
	}

	if err := dataStore.Trips().Delete(r.Context(), tripID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrTripNotFound)
			return
		}
		utils.Logger.Errorf("failed to delete trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Trip deleted successfully",
	})
}
