package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"coursegen-backend/internal/handlers"
	"coursegen-backend/internal/middleware"
)

func New(
	courseHandler *handlers.CourseHandler,
	chatHandler *handlers.ChatHandler,
	levelHandler *handlers.LevelHandler,
	domainHandler *handlers.DomainHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", handlers.Index)

	// ──── Course Routes ────
	r.Post("/generate-course", courseHandler.Generate)
	r.Post("/generate-question", courseHandler.GenerateQuestions)
	r.Post("/course-recommendation", courseHandler.Recommend)

	// ──── Chatbot Routes ────
	r.Post("/doubt-chatbot", chatHandler.ResolveDoubt)

	// ──── Level Routes ────
	r.Post("/predict-level", levelHandler.Predict)

	// ──── Domain Routes ────
	r.Post("/detect-domain-from-file", domainHandler.Detect)

	return r
}
