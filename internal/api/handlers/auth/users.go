package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"tripmate/internal/models"
	"tripmate/internal/store"
	"tripmate/pkg/utils"
)

var dataStore store.Store

// Setup wires the handlers to the persistence layer. Called once at startup.
func Setup(s store.Store) {
	dataStore = s
}

// FUNC TO REGISTER USERS
func RegisterUsersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if dataStore == nil {
		utils.Logger.Error("store is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// The model hides the password from every response, so the request body
	// needs its own struct with a real password field.
	type signupRequest struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	var req signupRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	newUser := models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Username:  strings.ToLower(strings.TrimSpace(req.Username)),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if newUser.FirstName == "" || newUser.LastName == "" || newUser.Username == "" ||
		newUser.Email == "" || req.Password == "" {
		utils.WriteError(w, "missing required fields", http.StatusBadRequest)
		return
	}

	hashedPwd, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.WriteError(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	newUser.Password = hashedPwd

	if err := dataStore.Users().Create(r.Context(), &newUser); err != nil {
		if errors.Is(err, store.ErrConflict) {
			utils.WriteError(w, "email or username already exists", http.StatusConflict)
			return
		}
		utils.Logger.Errorf("failed to insert user: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	newUser.Password = ""

	utils.WriteJSONStatus(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "account created successfully",
		"data":    newUser,
	})
}

// FUNC TO LOGIN
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if dataStore == nil {
		utils.Logger.Error("store is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type loginRequest struct {
		AccountID string `json:"account_id"`
		Password  string `json:"password"`
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.AccountID == "" || req.Password == "" {
		utils.WriteError(w, "email or username and password are required", http.StatusBadRequest)
		return
	}

	user, err := dataStore.Users().GetByAccountID(r.Context(), strings.ToLower(req.AccountID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteError(w, "incorrect password or account ID", http.StatusForbidden)
			return
		}
		utils.Logger.Errorf("login query failed: %v", err)
		utils.WriteError(w, "internal error", http.StatusInternalServerError)
		return
	}

	match, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil {
		utils.Logger.Errorf("failed to verify password for user %d: %v", user.ID, err)
		utils.WriteError(w, "incorrect password or account ID", http.StatusForbidden)
		return
	}
	if !match {
		utils.WriteError(w, "incorrect password or account ID", http.StatusForbidden)
		return
	}

	tokenString, err := utils.SignToken(user.ID, user.Username, user.Email)
	if err != nil {
		utils.Logger.Error("could not create login token")
		utils.WriteError(w, "error signing in", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "Bearer",
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		Expires:  time.Now().Add(24 * time.Hour),
		SameSite: http.SameSiteStrictMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "login successful",
		"token":   tokenString,
		"user": map[string]interface{}{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
			"username":  user.Username,
		},
	})
}

// FUNC FOR LOGOUT
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "Bearer",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		Expires:  time.Unix(0, 0),
		SameSite: http.SameSiteStrictMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "logged out successfully",
	})
}
