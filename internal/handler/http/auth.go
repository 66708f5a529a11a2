package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/service"
	"github.com/mkhalinin/go-library-manager/internal/store"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("username", req.Username).Msg("no user was found/wrong password")
			http.Error(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, user, http.StatusOK)
}
