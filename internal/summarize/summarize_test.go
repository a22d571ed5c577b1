// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPrompt(t *testing.T) {
	prompt, err := renderPrompt("", "Full text of the paper.")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, DefaultInstruction),
		"prompt should start with the default instruction: %q", prompt)
	assert.Contains(t, prompt, "Full text of the paper.")
}

func TestRenderPromptCustomInstruction(t *testing.T) {
	prompt, err := renderPrompt("Summarize in two sentences.", "Body.")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "Summarize in two sentences."))
	assert.NotContains(t, prompt, DefaultInstruction)
	assert.Contains(t, prompt, "Body.")
}

func TestTextFromResponse(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: true,
		},
		{
			name: "empty content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
			},
			wantErr: true,
		},
		{
			name: "single part",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{genai.Text("A good paper.")}},
				}},
			},
			want: "A good paper.",
		},
		{
			name: "multiple parts joined",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{genai.Text("A good "), genai.Text("paper.")}},
				}},
			},
			want: "A good paper.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textFromResponse(tt.resp)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
