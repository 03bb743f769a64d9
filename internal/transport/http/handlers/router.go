package handlers

import (
	"net/http"
)

// NewRouter registers the API routes on a fresh mux.
func NewRouter(profile *ProfileHandler, message *MessageHandler, circle *CircleHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/messages", message.Create)
	mux.HandleFunc("POST /api/v1/messages/response", message.CreateResponse)
	mux.HandleFunc("POST /api/v1/messages/feed", message.Feed)
	mux.HandleFunc("GET /api/v1/messages/{id}", message.Get)

	mux.HandleFunc("POST /api/v1/profiles", profile.Create)
	mux.HandleFunc("GET /api/v1/profiles/{id}", profile.Get)
	mux.HandleFunc("GET /api/v1/profiles/username/{userName}", profile.GetByUserName)
	mux.HandleFunc("PUT /api/v1/profiles/{id}/avatar", profile.UpdateAvatar)
	mux.HandleFunc("POST /api/v1/follows", profile.Follow)

	mux.HandleFunc("POST /api/v1/circles", circle.Create)
	mux.HandleFunc("POST /api/v1/circles/{id}/members", circle.AddMember)
	mux.HandleFunc("GET /api/v1/circles/{id}", circle.Get)
	mux.HandleFunc("GET /api/v1/circles/members/{id}", circle.GetMember)

	return mux
}
