package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGenerator creates a generator for model using apiKey.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiGenerator{client: client, model: model, timeout: timeout}, nil
}

// Generate sends prompt as a single user turn and concatenates the text
// parts of the first candidate that has any.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{genai.NewPartFromText(prompt)},
	}}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	var out strings.Builder
	if resp != nil {
		for _, c := range resp.Candidates {
			if c == nil || c.Content == nil {
				continue
			}
			for _, p := range c.Content.Parts {
				if p != nil && p.Text != "" {
					out.WriteString(p.Text)
				}
			}
			if out.Len() > 0 {
				break
			}
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return out.String(), nil
}
