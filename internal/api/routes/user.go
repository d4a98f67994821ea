package routes

import (
	"Datashare/internal/api/handlers/user"
	"Datashare/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers account and follow endpoints on the router
func RegisterUserRoutes(r chi.Router, service users.Service) {
	userHandler := user.NewUserHandler(service)
	followHandler := user.NewFollowHandler(service)

	r.Post("/api/users", userHandler.HandleCreate)
	r.Get("/api/users", userHandler.HandleList)
	r.Get("/api/users/{username}", userHandler.HandleGet)
	r.Put("/api/users/{username}", userHandler.HandleUpdate)
	r.Delete("/api/users/{username}", userHandler.HandleDelete)

	r.Post("/api/users/{username}/follow", followHandler.HandleFollow)
	r.Get("/api/users/{username}/followers", followHandler.HandleFollowers)
	r.Get("/api/users/{username}/following", followHandler.HandleFollowing)
	r.Post("/api/users/{username}/repositories", followHandler.HandleAddRepository)
	r.Get("/api/users/{username}/repositories", followHandler.HandleRepositories)
}
