package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"coursegen-backend/internal/models"
)

// doubtAnswerer is the slice of the Gemini service the chat handler
// consumes.
type doubtAnswerer interface {
	AnswerDoubt(ctx context.Context, question string) (string, error)
}

type ChatHandler struct {
	geminiService doubtAnswerer
}

func NewChatHandler(geminiService doubtAnswerer) *ChatHandler {
	return &ChatHandler{geminiService: geminiService}
}

// ResolveDoubt answers a free-form student question. The reply is passed
// through untouched, fences and all, since it is prose rather than JSON.
func (h *ChatHandler) ResolveDoubt(w http.ResponseWriter, r *http.Request) {
	var req models.DoubtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "ques is required", r))
		return
	}

	answer, err := h.geminiService.AnswerDoubt(r.Context(), req.Question)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", "Failed to get AI response", r))
		return
	}

	writeJSON(w, http.StatusOK, models.DoubtResponse{Answer: answer})
}
