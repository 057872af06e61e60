package handlers

import (
	"net/http"

	"coursegen-backend/internal/models"
)

// Index lists the service name and its endpoints.
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.IndexResponse{
		Message: "Full Course Generator API",
		Endpoints: []string{
			"/generate-course",
			"/doubt-chatbot",
			"/generate-question",
			"/predict-level",
			"/course-recommendation",
			"/detect-domain-from-file",
		},
	})
}
