package github

import (
	"context"
	"net/http"
	"strings"

	"github.com/gitbrief/gitbrief/internal/domain/apperrors"
	"github.com/gitbrief/gitbrief/internal/domain/models"
	"github.com/gitbrief/gitbrief/internal/domain/ports"
	"github.com/gitbrief/gitbrief/internal/logger"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.ActivityFetcher = (*Client)(nil)

// eventsPerPage is the maximum page size the events endpoint accepts.
const eventsPerPage = 100

// ActivityService is the slice of go-github's Activity API the client needs.
type ActivityService interface {
	ListEventsPerformedByUser(ctx context.Context, user string, publicOnly bool, opts *github.ListOptions) ([]*github.Event, *github.Response, error)
}

// Client fetches a user's recent activity from the GitHub events API and
// projects it into the digest model.
type Client struct {
	activity ActivityService
	username string
}

// NewClient builds a client authenticated with the given token. The token is
// required to see private-repository events; an empty token still works for
// public activity.
func NewClient(username, token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)
	return &Client{
		activity: gh.Activity,
		username: username,
	}
}

// NewClientWithServices builds a client over a pre-built activity service.
// Used by tests to substitute the GitHub API.
func NewClientWithServices(activity ActivityService, username string) *Client {
	return &Client{
		activity: activity,
		username: username,
	}
}

// FetchEvents returns the user's recent events in the order GitHub reports
// them (newest first). A non-success status maps to FetchError, a failure to
// reach the API maps to TransportError. No retries.
func (c *Client) FetchEvents(ctx context.Context) ([]models.Event, error) {
	wire, resp, err := c.activity.ListEventsPerformedByUser(ctx, c.username, false, &github.ListOptions{
		PerPage: eventsPerPage,
	})
	if err != nil {
		if resp != nil {
			return nil, apperrors.NewFetchError(resp.StatusCode)
		}
		return nil, apperrors.NewTransportError("github", err)
	}

	events := make([]models.Event, 0, len(wire))
	for _, ev := range wire {
		events = append(events, projectEvent(ctx, ev))
	}

	return events, nil
}

// projectEvent maps one wire event onto the digest model. The projection is
// total: unknown categories and malformed payloads keep the common fields
// and carry no detail.
func projectEvent(ctx context.Context, ev *github.Event) models.Event {
	out := models.Event{
		Type:      ev.GetType(),
		Repo:      ev.GetRepo().GetName(),
		CreatedAt: ev.GetCreatedAt().Time,
		Private:   !ev.GetPublic(),
	}

	payload, err := ev.ParsePayload()
	if err != nil {
		logger.Debug(ctx, "event payload not parseable, keeping common fields only",
			"type", out.Type, "repo", out.Repo, "error", err)
		return out
	}

	switch p := payload.(type) {
	case *github.PushEvent:
		detail := models.PushDetail{
			Commits: len(p.Commits),
			Branch:  strings.TrimPrefix(p.GetRef(), "refs/heads/"),
		}
		for _, commit := range p.Commits {
			detail.CommitMessages = append(detail.CommitMessages, commit.GetMessage())
		}
		out.Detail = detail
	case *github.CreateEvent:
		out.Detail = models.CreateDetail{
			RefType: p.GetRefType(),
			Ref:     p.GetRef(),
		}
	case *github.DeleteEvent:
		out.Detail = models.DeleteDetail{
			RefType: p.GetRefType(),
			Ref:     p.GetRef(),
		}
	case *github.IssuesEvent:
		out.Detail = models.IssueDetail{
			Action: p.GetAction(),
		}
	case *github.PullRequestEvent:
		out.Detail = models.PullRequestDetail{
			Action: p.GetAction(),
			Title:  p.GetPullRequest().GetTitle(),
		}
	}

	return out
}
