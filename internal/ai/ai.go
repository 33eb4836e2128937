package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIService holds the Gemini client used by the product copywriter.
type AIService struct {
	Client *genai.Client
}

// NewAIService initializes the Gemini client.
func NewAIService(ctx context.Context, apiKey string) (*AIService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &AIService{Client: client}, nil
}

// Close releases the underlying client.
func (s *AIService) Close() error {
	return s.Client.Close()
}

// GenerateProductDescription drafts storefront copy for a product from
// its name, category and material.
func (s *AIService) GenerateProductDescription(ctx context.Context, name, category, material, modelName string) (string, error) {
	if modelName == "" {
		modelName = "gemini-1.5-flash" // Fallback default
	}
	model := s.Client.GenerativeModel(modelName)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(`
			You write product descriptions for a fashion storefront.
			Rules: two short paragraphs, no headings, no emoji,
			mention the material once, never invent measurements.
		`)},
	}

	prompt := fmt.Sprintf("Product: %s\nCategory: %s\nMaterial: %s", name, category, material)
	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error generating description: %w", err)
	}

	var out strings.Builder
	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.WriteString(string(text))
			}
		}
	}

	description := strings.TrimSpace(out.String())
	if description == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return description, nil
}
