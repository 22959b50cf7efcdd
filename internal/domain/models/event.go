package models

import (
	"encoding/json"
	"time"
)

// Event is a single GitHub activity entry projected into the digest model.
// The common fields are always present; Detail carries the category-specific
// payload and is nil for categories the digest does not break down further.
type Event struct {
	Type      string
	Repo      string
	CreatedAt time.Time
	Private   bool
	Detail    EventDetail
}

// EventDetail is implemented by the per-category payload projections.
type EventDetail interface {
	isEventDetail()
}

// PushDetail describes a push: how many commits landed, on which branch,
// and the commit messages when the push carried any.
type PushDetail struct {
	Commits        int
	Branch         string
	CommitMessages []string
}

// CreateDetail describes a created ref. Ref is empty for repository
// creations, where GitHub sends no ref name.
type CreateDetail struct {
	RefType string
	Ref     string
}

// DeleteDetail describes a deleted branch or tag.
type DeleteDetail struct {
	RefType string
	Ref     string
}

// IssueDetail carries the action taken on an issue (opened, closed, ...).
type IssueDetail struct {
	Action string
}

// PullRequestDetail carries the action taken on a pull request and its title.
type PullRequestDetail struct {
	Action string
	Title  string
}

func (PushDetail) isEventDetail()        {}
func (CreateDetail) isEventDetail()      {}
func (DeleteDetail) isEventDetail()      {}
func (IssueDetail) isEventDetail()       {}
func (PullRequestDetail) isEventDetail() {}

// MarshalJSON flattens the common fields and the category detail into a
// single object. This is the shape the digest prompt consumes, so the
// category-specific keys appear only when the event has that category.
func (e Event) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"type":       e.Type,
		"repo":       e.Repo,
		"created_at": e.CreatedAt.Format(time.RFC3339),
		"is_private": e.Private,
	}

	switch d := e.Detail.(type) {
	case PushDetail:
		out["commits"] = d.Commits
		out["branch"] = d.Branch
		if len(d.CommitMessages) > 0 {
			out["commit_messages"] = d.CommitMessages
		}
	case CreateDetail:
		out["ref_type"] = d.RefType
		if d.Ref != "" {
			out["ref"] = d.Ref
		}
	case DeleteDetail:
		out["ref_type"] = d.RefType
		out["ref"] = d.Ref
	case IssueDetail:
		out["action"] = d.Action
	case PullRequestDetail:
		out["action"] = d.Action
		out["pr_title"] = d.Title
	}

	return json.Marshal(out)
}
