package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/models"
)

type userRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.AddUser(ctx, req.Role, req.UserID, req.Username, req.Password, req.Email)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("adding user failed")
		writeError(w, err)
		return
	}

	writeJSON(w, user, http.StatusCreated)
}

// getAllUsers lists all accounts, or looks up one by the optional
// ?username= query parameter.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if username := r.URL.Query().Get("username"); username != "" {
		user, err := h.services.UserService.GetUserByUsername(ctx, username)
		if err != nil {
			log.Err(err).Str("username", username).Msg("user lookup failed")
			writeError(w, err)
			return
		}
		writeJSON(w, user, http.StatusOK)
		return
	}

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		writeError(w, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := h.services.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("user_id", userID).Msg("user lookup failed")
		writeError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, "userId")

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{
		UserID:   userID,
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if err := h.services.UserService.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("user_id", userID).Msg("updating user failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		logger.FromRequest(r).Err(err).Str("user_id", userID).Msg("deleting user failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
