package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/models"
)

type bookRequest struct {
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int    `json:"year"`
	Category string `json:"category"`
}

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.AddBook(ctx, req.Category, req.ISBN, req.Title, req.Author, req.Year)
	if err != nil {
		log.Err(err).Str("isbn", req.ISBN).Msg("adding book failed")
		writeError(w, err)
		return
	}

	writeJSON(w, book, http.StatusCreated)
}

func (h *Handler) getAllBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.GetAllBooks(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing books failed")
		writeError(w, err)
		return
	}

	if books == nil {
		books = []models.Book{}
	}
	writeJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	book, err := h.services.BookService.GetBookByISBN(r.Context(), isbn)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("isbn", isbn).Msg("book lookup failed")
		writeError(w, err)
		return
	}

	writeJSON(w, book, http.StatusOK)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	isbn := chi.URLParam(r, "isbn")

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Availability is owned by the lending flow; an update only rewrites the
	// descriptive attributes, so the stored flag is carried over.
	current, err := h.services.BookService.GetBookByISBN(ctx, isbn)
	if err != nil {
		log.Err(err).Str("isbn", isbn).Msg("book lookup failed")
		writeError(w, err)
		return
	}

	book := models.Book{
		ISBN:        isbn,
		Title:       req.Title,
		Author:      req.Author,
		Year:        req.Year,
		Category:    models.Category(req.Category),
		IsAvailable: current.IsAvailable,
	}
	if err := h.services.BookService.UpdateBook(ctx, book); err != nil {
		log.Err(err).Str("isbn", isbn).Msg("updating book failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	if err := h.services.BookService.DeleteBook(r.Context(), isbn); err != nil {
		logger.FromRequest(r).Err(err).Str("isbn", isbn).Msg("deleting book failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
