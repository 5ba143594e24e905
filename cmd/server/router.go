package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"todoserver/internal/api"
	apiMiddleware "todoserver/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Mutating task routes sit behind the bearer-token gate;
// listing, registration, and login are public.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService)
	taskHandler := api.NewTaskHandler(app.taskService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public routes
	r.Get("/", taskHandler.List)
	r.Post("/user/register", authHandler.Register)
	r.Post("/user/login", authHandler.Login)

	// Protected routes
	r.With(authMiddleware.Authenticate).Post("/create", taskHandler.Create)

	// The ID check runs before the auth gate: a malformed path is a 400
	// regardless of what the Authorization header holds.
	r.With(taskHandler.RequireValidID, authMiddleware.Authenticate).
		Delete("/delete/{id}", taskHandler.Delete)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
