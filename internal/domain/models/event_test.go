package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalToMap(t *testing.T, ev Event) map[string]any {
	t.Helper()

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func baseEvent(eventType string, detail EventDetail) Event {
	return Event{
		Type:      eventType,
		Repo:      "user/repo",
		CreatedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		Detail:    detail,
	}
}

func TestMarshal_CommonFieldsAlwaysPresent(t *testing.T) {
	out := marshalToMap(t, baseEvent("WatchEvent", nil))

	assert.Equal(t, "WatchEvent", out["type"])
	assert.Equal(t, "user/repo", out["repo"])
	assert.Equal(t, "2025-06-15T10:00:00Z", out["created_at"])
	assert.Equal(t, false, out["is_private"])
	// No category detail: exactly the common set.
	assert.Len(t, out, 4)
}

func TestMarshal_PushWithCommits(t *testing.T) {
	out := marshalToMap(t, baseEvent("PushEvent", PushDetail{
		Commits:        2,
		Branch:         "main",
		CommitMessages: []string{"fix: parser", "feat: caching"},
	}))

	assert.Equal(t, float64(2), out["commits"])
	assert.Equal(t, "main", out["branch"])
	assert.Equal(t, []any{"fix: parser", "feat: caching"}, out["commit_messages"])
}

func TestMarshal_PushWithoutCommitsOmitsMessages(t *testing.T) {
	out := marshalToMap(t, baseEvent("PushEvent", PushDetail{Commits: 0, Branch: "dev"}))

	assert.Equal(t, float64(0), out["commits"])
	assert.Equal(t, "dev", out["branch"])
	assert.NotContains(t, out, "commit_messages")
}

func TestMarshal_CreateWithoutRefOmitsIt(t *testing.T) {
	out := marshalToMap(t, baseEvent("CreateEvent", CreateDetail{RefType: "repository"}))

	assert.Equal(t, "repository", out["ref_type"])
	assert.NotContains(t, out, "ref")
}

func TestMarshal_CreateWithRef(t *testing.T) {
	out := marshalToMap(t, baseEvent("CreateEvent", CreateDetail{RefType: "branch", Ref: "feature/login"}))

	assert.Equal(t, "branch", out["ref_type"])
	assert.Equal(t, "feature/login", out["ref"])
}

func TestMarshal_Delete(t *testing.T) {
	out := marshalToMap(t, baseEvent("DeleteEvent", DeleteDetail{RefType: "tag", Ref: "v0.1.0"}))

	assert.Equal(t, "tag", out["ref_type"])
	assert.Equal(t, "v0.1.0", out["ref"])
}

func TestMarshal_IssueAndPullRequest(t *testing.T) {
	issue := marshalToMap(t, baseEvent("IssuesEvent", IssueDetail{Action: "opened"}))
	assert.Equal(t, "opened", issue["action"])
	assert.NotContains(t, issue, "pr_title")

	pr := marshalToMap(t, baseEvent("PullRequestEvent", PullRequestDetail{Action: "closed", Title: "Add retry logic"}))
	assert.Equal(t, "closed", pr["action"])
	assert.Equal(t, "Add retry logic", pr["pr_title"])
}

func TestMarshal_PrivateFlag(t *testing.T) {
	ev := baseEvent("PushEvent", nil)
	ev.Private = true

	out := marshalToMap(t, ev)

	assert.Equal(t, true, out["is_private"])
}
