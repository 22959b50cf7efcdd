package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gitbrief/gitbrief/internal/domain/apperrors"
	"github.com/gitbrief/gitbrief/internal/domain/ports"
	"github.com/gitbrief/gitbrief/internal/i18n"
	"github.com/gitbrief/gitbrief/internal/infrastructure/httpclient"
)

var _ ports.Notifier = (*Client)(nil)

const (
	colorBlurple = 0x7289DA
	colorRed     = 0xFF0000

	// maxDescriptionLen is Discord's embed description limit.
	maxDescriptionLen = 4096

	requestTimeout = 15 * time.Second
)

// Client publishes messages to a Discord channel through a webhook.
type Client struct {
	webhookURL string
	httpClient httpclient.HTTPClient
	trans      *i18n.Translations
}

// Embed is the styled message block Discord renders in the channel.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

// WebhookPayload is the JSON body POSTed to the webhook URL.
type WebhookPayload struct {
	Embeds []Embed `json:"embeds"`
}

func NewClient(webhookURL string, trans *i18n.Translations) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		trans:      trans,
	}
}

// NewClientWithHTTP builds a client over a caller-provided transport (tests).
func NewClientWithHTTP(webhookURL string, hc httpclient.HTTPClient, trans *i18n.Translations) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: hc,
		trans:      trans,
	}
}

// SendDigest posts the daily digest as a blurple embed.
func (c *Client) SendDigest(ctx context.Context, message string) error {
	embed := Embed{
		Title:       c.trans.GetMessage("embed_title", 0, nil),
		Description: truncateDescription(message),
		Color:       colorBlurple,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Footer: &EmbedFooter{
			Text: c.trans.GetMessage("embed_footer", 0, nil),
		},
	}
	return c.sendEmbed(ctx, embed)
}

// SendError posts a red embed describing a failed run. Best effort: callers
// only log when this fails too.
func (c *Client) SendError(ctx context.Context, runErr error) error {
	embed := Embed{
		Title: c.trans.GetMessage("embed_error_title", 0, nil),
		Description: truncateDescription(c.trans.GetMessage("embed_error_body", 0, map[string]interface{}{
			"Error": runErr.Error(),
		})),
		Color:     colorRed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer: &EmbedFooter{
			Text: c.trans.GetMessage("embed_footer", 0, nil),
		},
	}
	return c.sendEmbed(ctx, embed)
}

func (c *Client) sendEmbed(ctx context.Context, embed Embed) error {
	payload := WebhookPayload{Embeds: []Embed{embed}}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError("discord", err)
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck // defer close is best effort
	}()

	// The webhook signals acceptance with 204 and an empty body.
	if resp.StatusCode != http.StatusNoContent {
		return apperrors.NewNotifyError(resp.StatusCode)
	}

	return nil
}

// truncateDescription keeps the text inside Discord's embed limit, cutting
// on the last sentence boundary when there is one. The hard cut backs up to
// a rune boundary so the webhook never receives broken UTF-8.
func truncateDescription(message string) string {
	if len(message) <= maxDescriptionLen {
		return message
	}

	cut := maxDescriptionLen
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}

	truncated := message[:cut]
	if lastPeriod := strings.LastIndex(truncated, "."); lastPeriod > 0 {
		return message[:lastPeriod+1]
	}
	return truncated
}
