package handlers

import (
	"encoding/json"
	"net/http"

	"coursegen-backend/internal/models"
	"coursegen-backend/internal/services"
)

type LevelHandler struct{}

func NewLevelHandler() *LevelHandler {
	return &LevelHandler{}
}

// Predict classifies a quiz result into a proficiency level. The response
// body is the bare level string.
func (h *LevelHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req models.QuizResult
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateQuizResult(req); fields != nil {
		handleServiceError(w, r, &services.ValidationError{Fields: fields})
		return
	}

	writeJSON(w, http.StatusOK, services.PredictUserLevel(req))
}

func validateQuizResult(req models.QuizResult) map[string]string {
	fields := make(map[string]string)
	if req.Score < 0 || req.Score > 9 {
		fields["score"] = "score must be between 0 and 9"
	}
	if req.TimeTaken <= 0 {
		fields["time_taken"] = "time_taken must be positive"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
