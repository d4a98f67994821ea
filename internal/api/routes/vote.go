package routes

import (
	"Datashare/internal/api/handlers/vote"
	"Datashare/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// RegisterVoteRoutes registers vote endpoints on the router
func RegisterVoteRoutes(r chi.Router, service votes.Service) {
	addHandler := vote.NewAddVoteHandler(service)
	getHandler := vote.NewGetVotesHandler(service)

	r.Post("/api/add_dataset_vote", addHandler.HandleAddVote)
	r.Get("/api/get_votes_by_dataset", getHandler.HandleGetByDataset)
	r.Get("/api/get_votes_by_user", getHandler.HandleGetByUser)
}
