package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/user/login", h.login)

	router.Route("/api/books", func(r chi.Router) {
		r.Get("/", h.getAllBooks)
		r.Post("/", h.addBook)
		r.Get("/{isbn}", h.getBook)
		r.Put("/{isbn}", h.updateBook)
		r.Delete("/{isbn}", h.deleteBook)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.getAllUsers)
		r.Post("/", h.addUser)
		r.Get("/{userId}", h.getUser)
		r.Put("/{userId}", h.updateUser)
		r.Delete("/{userId}", h.deleteUser)
	})

	router.Route("/api/lending", func(r chi.Router) {
		r.Post("/borrow", h.borrowBook)
		r.Post("/return", h.returnBook)
		r.Get("/records", h.getAllBorrowRecords)
	})

	return router
}
