package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"coursegen-backend/internal/models"
	"coursegen-backend/internal/services"
)

// courseGenerator is the slice of the course service the handlers consume.
type courseGenerator interface {
	GenerateCourse(ctx context.Context, req models.CourseRequest) (*models.Course, error)
	GenerateAssessmentCourse(ctx context.Context, req models.CourseRequest) (*models.AssessmentCourse, error)
	RecommendCourses(ctx context.Context, studentLevel, course string) ([]models.CourseRecommendation, error)
}

type CourseHandler struct {
	courseService courseGenerator
}

func NewCourseHandler(courseService courseGenerator) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// Generate builds a full-detail course. This call holds the connection
// open across every model call the pipeline makes.
func (h *CourseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateCourseRequest(req); fields != nil {
		handleServiceError(w, r, &services.ValidationError{Fields: fields})
		return
	}

	course, err := h.courseService.GenerateCourse(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// GenerateQuestions builds the MCQ variant of a course.
func (h *CourseHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateCourseRequest(req); fields != nil {
		handleServiceError(w, r, &services.ValidationError{Fields: fields})
		return
	}

	course, err := h.courseService.GenerateAssessmentCourse(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// Recommend suggests follow-up courses for a student level.
func (h *CourseHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	fields := make(map[string]string)
	if strings.TrimSpace(req.StudentLevel) == "" {
		fields["student_level"] = "student_level is required"
	}
	if strings.TrimSpace(req.Course) == "" {
		fields["course"] = "course is required"
	}
	if len(fields) > 0 {
		handleServiceError(w, r, &services.ValidationError{Fields: fields})
		return
	}

	recommendations, err := h.courseService.RecommendCourses(r.Context(), req.StudentLevel, req.Course)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.RecommendationResponse{Recommendations: recommendations})
}

func validateCourseRequest(req models.CourseRequest) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(req.Subject) == "" {
		fields["subject"] = "subject is required"
	}
	if !req.Difficulty.Valid() {
		fields["difficulty"] = "difficulty must be easy, medium, or hard"
	}
	if strings.TrimSpace(req.FocusArea) == "" {
		fields["focus_area"] = "focus_area is required"
	}
	if req.Units < 1 || req.Units > 10 {
		fields["units"] = "units must be between 1 and 10"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", e.Fields, r))
	case *services.BadRequestError:
		writeJSON(w, http.StatusBadRequest, errorResp("BAD_REQUEST", e.Message, r))
	case *services.UnsupportedFileError:
		writeJSON(w, http.StatusBadRequest, errorResp("UNSUPPORTED_FILE_TYPE", e.Error(), r))
	case *services.EmptyContentError:
		writeJSON(w, http.StatusBadRequest, errorResp("EMPTY_CONTENT", e.Error(), r))
	case *services.GenerationError:
		writeJSON(w, http.StatusInternalServerError, errorResp("GENERATION_FAILED", e.Message, r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
