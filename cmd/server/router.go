package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/raduapetrei/bookshelf-api/internal/api"
	apiMiddleware "github.com/raduapetrei/bookshelf-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService)
	shelfHandler := api.NewShelfHandler(app.shelfService)
	bookHandler := api.NewBookHandler(app.bookService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Registration and login sit outside /api, matching the published routes.
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Route("/api", func(r chi.Router) {
		r.Route("/books", func(r chi.Router) {
			r.Get("/", bookHandler.ListBooks)
			r.Post("/", bookHandler.CreateBook)
			r.Get("/{id}", bookHandler.GetBook)
			r.Put("/{title}", bookHandler.UpdateBook)
			r.Delete("/{title}", bookHandler.DeleteBook)
		})

		r.Route("/user-shelves", func(r chi.Router) {
			r.Get("/", shelfHandler.ListShelves)
			r.Post("/", shelfHandler.CreateShelf)
			r.Get("/{id}", shelfHandler.GetShelf)
			r.Put("/{id}", shelfHandler.UpdateShelf)
			r.Delete("/{id}", shelfHandler.DeleteShelf)
			r.Get("/{id}/books", shelfHandler.ListShelfBooks)
		})

		// Token-protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/me", authHandler.Me)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
