package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gitbrief/gitbrief/internal/config"
	"github.com/gitbrief/gitbrief/internal/domain/apperrors"
	"github.com/gitbrief/gitbrief/internal/domain/models"
	"github.com/gitbrief/gitbrief/internal/domain/ports"
	"google.golang.org/genai"
)

const (
	digestTemperature = 1.0
	digestMaxTokens   = 256
)

var _ ports.SummaryGenerator = (*DigestService)(nil)

// DigestService generates the daily activity digest with Gemini.
type DigestService struct {
	client *genai.Client
	model  string
}

func NewDigestService(ctx context.Context, cfg *config.Config) (*DigestService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return &DigestService{
		client: client,
		model:  cfg.GeminiModel,
	}, nil
}

// GenerateDigest asks the model for a short narrative of the day's events.
// Every failure comes back as a GenerationError; the caller owns the
// decision to substitute the fallback message.
func (s *DigestService) GenerateDigest(ctx context.Context, events []models.Event) (string, error) {
	prompt, err := buildDigestPrompt(events)
	if err != nil {
		return "", apperrors.NewGenerationError(err)
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](digestTemperature),
		MaxOutputTokens:   digestMaxTokens,
		SystemInstruction: genai.NewContentFromText(digestPersona, genai.RoleUser),
	})
	if err != nil {
		return "", apperrors.NewGenerationError(err)
	}

	text := formatResponse(resp)
	if text == "" {
		return "", apperrors.NewGenerationError(errors.New("empty response from model"))
	}

	// Length limits are the notifier's concern; the digest goes out as the
	// model produced it.
	return text, nil
}

// buildDigestPrompt serializes the events and embeds them in the template.
func buildDigestPrompt(events []models.Event) (string, error) {
	eventsJSON, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling events: %w", err)
	}
	return fmt.Sprintf(digestPromptTemplate, eventsJSON), nil
}

// formatResponse concatenates the text parts of every candidate and trims
// the surrounding whitespace.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					builder.WriteString(part.Text)
				}
			}
		}
	}
	return strings.TrimSpace(builder.String())
}
