package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Fixed sampling configuration shared by every generation call.
const (
	geminiTemperature     = 0.3
	geminiTopP            = 0.95
	geminiTopK            = 64
	geminiMaxOutputTokens = 8192
)

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(geminiTemperature)
	model.SetTopP(geminiTopP)
	model.SetTopK(geminiTopK)
	model.SetMaxOutputTokens(geminiMaxOutputTokens)
	model.ResponseMIMEType = "text/plain"

	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Generate sends one prompt and returns the raw text reply. No retry and
// no backoff: transport and quota errors propagate to the caller.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("Gemini returned empty response")
	}

	return text, nil
}

// AnswerDoubt resolves a single student question. The reply is returned
// verbatim, markdown and all.
func (s *GeminiService) AnswerDoubt(ctx context.Context, question string) (string, error) {
	return s.Generate(ctx, buildDoubtPrompt(question))
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
