package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursegen-backend/internal/handlers"
	"coursegen-backend/internal/models"
)

type stubCourseService struct{}

func (stubCourseService) GenerateCourse(ctx context.Context, req models.CourseRequest) (*models.Course, error) {
	return &models.Course{}, nil
}

func (stubCourseService) GenerateAssessmentCourse(ctx context.Context, req models.CourseRequest) (*models.AssessmentCourse, error) {
	return &models.AssessmentCourse{}, nil
}

func (stubCourseService) RecommendCourses(ctx context.Context, studentLevel, course string) ([]models.CourseRecommendation, error) {
	return nil, nil
}

type stubDoubtService struct{}

func (stubDoubtService) AnswerDoubt(ctx context.Context, question string) (string, error) {
	return "", nil
}

type stubDomainService struct{}

func (stubDomainService) DetectFromURL(ctx context.Context, fileURL string) (*models.DomainDetection, error) {
	return &models.DomainDetection{}, nil
}

func newTestRouter() http.Handler {
	return New(
		handlers.NewCourseHandler(stubCourseService{}),
		handlers.NewChatHandler(stubDoubtService{}),
		handlers.NewLevelHandler(),
		handlers.NewDomainHandler(stubDomainService{}),
	)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", got)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != `{"status":"ok"}` {
		t.Errorf("Expected health body, got %q", body)
	}
}

// Empty JSON bodies fail each endpoint's validation, so a 400 proves the
// route reached its handler rather than falling through to chi's 404.
func TestRouteWiring(t *testing.T) {
	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodPost, "/generate-course", http.StatusBadRequest},
		{http.MethodPost, "/generate-question", http.StatusBadRequest},
		{http.MethodPost, "/course-recommendation", http.StatusBadRequest},
		{http.MethodPost, "/doubt-chatbot", http.StatusBadRequest},
		{http.MethodPost, "/predict-level", http.StatusBadRequest},
		{http.MethodPost, "/detect-domain-from-file", http.StatusBadRequest},
		{http.MethodGet, "/generate-course", http.StatusMethodNotAllowed},
		{http.MethodGet, "/no-such-route", http.StatusNotFound},
	}

	router := newTestRouter()
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var req *http.Request
			if tc.method == http.MethodPost {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("Expected %d, got %d", tc.wantStatus, rr.Code)
			}
		})
	}
}

func TestMiddlewareApplied(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Expected origin to be echoed, got %q", got)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated request ID on the response")
	}
}
