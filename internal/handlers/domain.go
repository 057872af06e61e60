package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"coursegen-backend/internal/models"
)

// domainDetector is the slice of the domain service the handler consumes.
type domainDetector interface {
	DetectFromURL(ctx context.Context, fileURL string) (*models.DomainDetection, error)
}

type DomainHandler struct {
	domainService domainDetector
}

func NewDomainHandler(domainService domainDetector) *DomainHandler {
	return &DomainHandler{domainService: domainService}
}

// Detect classifies the subject domain of a document by URL.
func (h *DomainHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req models.FileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.FileURL) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "file_url is required", r))
		return
	}

	detection, err := h.domainService.DetectFromURL(r.Context(), req.FileURL)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detection)
}
