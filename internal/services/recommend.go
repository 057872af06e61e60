package services

import (
	"context"
	"encoding/json"
	"strings"

	"coursegen-backend/internal/models"
)

// RecommendCourses asks the model for four follow-up courses. The prompt
// shows bare object literals rather than an array, so the reply is
// re-wrapped in brackets before parsing. Trimming first keeps the wrap
// idempotent when the model returns a proper array anyway.
func (s *CourseService) RecommendCourses(ctx context.Context, studentLevel, course string) ([]models.CourseRecommendation, error) {
	raw, err := s.gemini.Generate(ctx, buildRecommendationPrompt(studentLevel, course))
	if err != nil {
		return nil, err
	}

	cleaned := stripFencesAndQuotes(raw)
	wrapped := "[" + strings.Trim(cleaned, "[]") + "]"

	var recommendations []models.CourseRecommendation
	if err := json.Unmarshal([]byte(wrapped), &recommendations); err != nil {
		return nil, &GenerationError{Message: "Gemini response is not in valid JSON format."}
	}

	return recommendations, nil
}
