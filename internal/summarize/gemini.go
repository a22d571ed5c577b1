// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// DefaultModel is the model identifier used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// GeminiBackend summarizes papers through the Gemini API.
type GeminiBackend struct {
	client      *genai.Client
	model       string
	instruction string
}

// NewGeminiBackend creates a Gemini-backed Summarizer from cfg. The API
// key is required; model and instruction fall back to defaults.
func NewGeminiBackend(ctx context.Context, cfg types.SummaryConfig) (*GeminiBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &GeminiBackend{
		client:      client,
		model:       model,
		instruction: cfg.Instruction,
	}, nil
}

// Model returns the configured model identifier.
func (b *GeminiBackend) Model() string { return b.model }

// Summarize submits the instruction and paper text to the model and
// returns its text response.
func (b *GeminiBackend) Summarize(ctx context.Context, text string) (string, error) {
	prompt, err := renderPrompt(b.instruction, text)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	model := b.client.GenerativeModel(b.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}

	return textFromResponse(resp)
}

// Close releases the underlying API client.
func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

// textFromResponse joins the text parts of the first candidate.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
