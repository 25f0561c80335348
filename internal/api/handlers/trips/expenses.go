package trips

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"tripmate/internal/models"
	"tripmate/internal/permissions"
	"tripmate/internal/services"
	"tripmate/internal/store"
	"tripmate/pkg/utils"
)

// FUNC TO RECORD AN EXPENSE ON A TRIP
func CreateExpenseHandler(w http.ResponseWriter, r *http.Request) {
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
		Title    string          `json:"title"`
		Amount   decimal.Decimal `json:"amount"`
		Category string          `json:"category"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utils.WriteError(w, "expense title is required", http.StatusBadRequest)
		return
	}
	if !req.Amount.IsPositive() {
		utils.WriteError(w, "amount must be greater than zero", http.StatusBadRequest)
		return
	}

	if _, ok := getTripAsMember(w, r, tripID, p.ID); !ok {
		return
	}

	expense := models.Expense{
		TripID:   tripID,
		PaidBy:   p.ID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: models.NullString(strings.TrimSpace(req.Category)),
	}

	if err := dataStore.Expenses().Create(r.Context(), &expense); err != nil {
		utils.Logger.Errorf("failed to record expense on trip %d: %v", tripID, err)
		utils.WriteError(w, "failed to record expense, try again later!", http.StatusInternalServerError)
		return
	}

	utils.WriteJSONStatus(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Expense recorded successfully",
		"data":    expense,
	})
}

// FUNC TO LIST EXPENSES ON A TRIP
func ListExpensesHandler(w http.ResponseWriter, r *http.Request) {
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

	if _, ok := getTripAsMember(w, r, tripID, p.ID); !ok {
		return
	}

	expenses, err := dataStore.Expenses().ListByTrip(r.Context(), tripID)
	if err != nil {
		utils.Logger.Errorf("failed to list expenses on trip %d: %v", tripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(expenses),
		"data":   expenses,
	})
}

// getExpenseForMutation loads the expense and applies the author-only rule.
func getExpenseForMutation(w http.ResponseWriter, r *http.Request, expenseID, userID int) (models.Expense, bool) {
	expense, err := dataStore.Expenses().GetByID(r.Context(), expenseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrExpenseNotFound)
			return models.Expense{}, false
		}
		utils.Logger.Errorf("failed to load expense %d: %v", expenseID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return models.Expense{}, false
	}

	trip, err := dataStore.Trips().GetByID(r.Context(), expense.TripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrExpenseNotFound)
			return models.Expense{}, false
		}
		utils.Logger.Errorf("failed to load trip %d: %v", expense.TripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return models.Expense{}, false
	}

	isMember, err := dataStore.Members().IsMember(r.Context(), expense.TripID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to check membership on trip %d: %v", expense.TripID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return models.Expense{}, false
	}

	switch permissions.CanMutateResource(permissions.KindExpense, userID, expense.PaidBy, trip.OwnerID, isMember) {
	case permissions.NotFound:
		utils.WriteErr(w, services.ErrExpenseNotFound)
		return models.Expense{}, false
	case permissions.Forbidden:
		utils.WriteErr(w, services.ErrNotExpenseAuthor)
		return models.Expense{}, false
	}
	return expense, true
}

// FUNC TO UPDATE AN EXPENSE
func UpdateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}
	expenseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	type request struct {
		Title    *string          `json:"title"`
		Amount   *decimal.Decimal `json:"amount"`
		Category *string          `json:"category"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	expense, ok := getExpenseForMutation(w, r, expenseID, p.ID)
	if !ok {
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			utils.WriteError(w, "expense title is required", http.StatusBadRequest)
			return
		}
		expense.Title = title
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			utils.WriteError(w, "amount must be greater than zero", http.StatusBadRequest)
			return
		}
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = models.NullString(strings.TrimSpace(*req.Category))
	}

	if err := dataStore.Expenses().Update(r.Context(), expense); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrExpenseNotFound)
			return
		}
		utils.Logger.Errorf("failed to update expense %d: %v", expenseID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Expense updated successfully",
		"data":    expense,
	})
}

// FUNC TO DELETE AN EXPENSE
func DeleteExpenseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, ok := principal(w, r)
	if !ok {
		return
	}
	expenseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	expense, ok := getExpenseForMutation(w, r, expenseID, p.ID)
	if !ok {
		return
	}

	if err := dataStore.Expenses().Delete(r.Context(), expense.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErr(w, services.ErrExpenseNotFound)
			return
		}
		utils.Logger.Errorf("failed to delete expense %d: %v", expenseID, err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Expense deleted successfully",
	})
}
