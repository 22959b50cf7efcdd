package gemini

import (
	"testing"
	"time"

	"github.com/gitbrief/gitbrief/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildDigestPrompt(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	events := []models.Event{
		{
			Type:      "PushEvent",
			Repo:      "user/repo",
			CreatedAt: now,
			Detail: models.PushDetail{
				Commits:        2,
				Branch:         "main",
				CommitMessages: []string{"fix: parser", "feat: caching"},
			},
		},
		{
			Type:      "PullRequestEvent",
			Repo:      "user/other",
			CreatedAt: now,
			Private:   true,
			Detail:    models.PullRequestDetail{Action: "closed", Title: "Add retry logic"},
		},
	}

	prompt, err := buildDigestPrompt(events)
	require.NoError(t, err)

	assert.Contains(t, prompt, "PushEvent")
	assert.Contains(t, prompt, "PullRequestEvent")
	assert.Contains(t, prompt, "user/repo")
	assert.Contains(t, prompt, "fix: parser")
	assert.Contains(t, prompt, "Add retry logic")
	assert.Contains(t, prompt, "No emojis")
	assert.Contains(t, prompt, "Today's activity:")
}

func TestBuildDigestPrompt_UnknownCategoryHasOnlyCommonFields(t *testing.T) {
	events := []models.Event{
		{
			Type:      "WatchEvent",
			Repo:      "user/repo",
			CreatedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	prompt, err := buildDigestPrompt(events)
	require.NoError(t, err)

	assert.Contains(t, prompt, "WatchEvent")
	assert.NotContains(t, prompt, "commit_messages")
	assert.NotContains(t, prompt, "ref_type")
	assert.NotContains(t, prompt, "pr_title")
}

func TestFormatResponse(t *testing.T) {
	tests := []struct {
		name     string
		response *genai.GenerateContentResponse
		expected string
	}{
		{
			name:     "nil response",
			response: nil,
			expected: "",
		},
		{
			name:     "no candidates",
			response: &genai.GenerateContentResponse{},
			expected: "",
		},
		{
			name: "nil content",
			response: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: nil}},
			},
			expected: "",
		},
		{
			name: "multiple parts concatenated and trimmed",
			response: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []*genai.Part{
								{Text: "  Shipped the parser fix. "},
								{Text: "Then reviewed a PR.  "},
							},
						},
					},
				},
			},
			expected: "Shipped the parser fix. Then reviewed a PR.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatResponse(tt.response))
		})
	}
}
