package generate

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiModel is the model called for question answering.
const GeminiModel = "gemini-2.0-flash"

// Gemini generates answers through the Google Gen AI SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed generator. The key usually comes from
// GEMINI_API_KEY.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNoToken
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{client: client, model: GeminiModel}, nil
}

// Name identifies the backend.
func (g *Gemini) Name() string {
	return BackendGemini
}

// Generate calls the model with the prompt and returns its text.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](temperature),
			MaxOutputTokens: maxNewTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text := resp.Text()
	if text == "" {
		return "", &APIError{Code: "invalid_response", Message: "model returned no text"}
	}
	return text, nil
}
