package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/models"
)

type lendingRequest struct {
	UserID string `json:"userId"`
	ISBN   string `json:"isbn"`
}

func (h *Handler) borrowBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req lendingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.LendingService.BorrowBook(ctx, req.UserID, req.ISBN)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Str("isbn", req.ISBN).Msg("borrowing failed")
		writeError(w, err)
		return
	}

	writeJSON(w, record, http.StatusCreated)
}

func (h *Handler) returnBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req lendingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.LendingService.ReturnBook(ctx, req.UserID, req.ISBN)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Str("isbn", req.ISBN).Msg("returning failed")
		writeError(w, err)
		return
	}

	writeJSON(w, record, http.StatusOK)
}

func (h *Handler) getAllBorrowRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.LendingService.GetAllBorrowRecords(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing borrow records failed")
		writeError(w, err)
		return
	}

	if records == nil {
		records = []models.BorrowRecord{}
	}
	writeJSON(w, records, http.StatusOK)
}
