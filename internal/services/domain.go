package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"

	"coursegen-backend/internal/models"
)

// textExtractor is the slice of the file extraction service the domain
// detector consumes.
type textExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

// DomainService classifies the subject domain of a document fetched from
// a URL.
type DomainService struct {
	gemini     textGenerator
	extractor  textExtractor
	httpClient *http.Client
}

func NewDomainService(gemini textGenerator, extractor textExtractor) *DomainService {
	return &DomainService{
		gemini:    gemini,
		extractor: extractor,
		// The request context bounds the download, not a client timeout.
		httpClient: &http.Client{},
	}
}

// DetectFromURL downloads the file, extracts its text, and asks the model
// to classify it. Download problems are the caller's fault (a bad or dead
// URL), so they surface as 400s rather than server errors.
func (s *DomainService) DetectFromURL(ctx context.Context, fileURL string) (*models.DomainDetection, error) {
	filename := filenameFromURL(fileURL)

	data, err := s.download(ctx, fileURL)
	if err != nil {
		return nil, err
	}

	content, err := s.extractor.ExtractText(filename, data)
	if err != nil {
		return nil, err
	}

	raw, err := s.gemini.Generate(ctx, buildDomainPrompt(content))
	if err != nil {
		return nil, err
	}

	var detection models.DomainDetection
	if err := json.Unmarshal([]byte(stripFencesAndQuotes(raw)), &detection); err != nil {
		return nil, &GenerationError{Message: "Gemini response is not in valid JSON format."}
	}

	detection.Filename = filename
	if detection.Domain == "" {
		detection.Domain = "Unknown"
	}
	if detection.Subdomain == "" {
		detection.Subdomain = "Unknown"
	}
	if detection.Explanation == "" {
		detection.Explanation = "No explanation provided."
	}

	return &detection, nil
}

func (s *DomainService) download(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, &BadRequestError{Message: "Failed to download file."}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &BadRequestError{Message: "Failed to download file."}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &BadRequestError{Message: "Failed to download file."}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BadRequestError{Message: "Failed to download file."}
	}

	return data, nil
}

// filenameFromURL keeps only the last path segment so query strings and
// fragments never leak into the extension check.
func filenameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return path.Base(raw)
	}
	return path.Base(u.Path)
}
