package routes

import (
	"Datashare/internal/api/handlers/comment"
	"Datashare/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment and reply endpoints on the router
func RegisterCommentRoutes(r chi.Router, service comments.Service) {
	addHandler := comment.NewAddCommentHandler(service)
	getHandler := comment.NewGetCommentsHandler(service)
	visibilityHandler := comment.NewUpdateVisibilityHandler(service)
	replyHandler := comment.NewReplyHandler(service)

	r.Post("/api/add_comment", addHandler.HandleAddComment)
	r.Get("/api/get_all_comments_by_dataset", getHandler.HandleGetByDataset)
	r.Get("/api/get_all_comments", getHandler.HandleGetAll)
	r.Put("/api/update_comment_visibility", visibilityHandler.HandleUpdateComment)

	r.Post("/api/reply_comment", replyHandler.HandleReplyComment)
	r.Get("/api/get_comment_replies", replyHandler.HandleGetReplies)
	r.Put("/api/update_reply_visibility", visibilityHandler.HandleUpdateReply)
}
