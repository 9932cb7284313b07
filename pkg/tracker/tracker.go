// Package tracker abstracts the issue tracker hosting issues, comments,
// labels and milestones for a single repository.
package tracker

import (
	"context"

	"github.com/lerenn/issues-migrate/pkg/config"
	"github.com/lerenn/issues-migrate/pkg/issue"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tracker.go -destination=mocks/tracker.gen.go -package=mocks

// StateFilter selects issues by state when listing a repository.
type StateFilter string

// Supported state filters.
const (
	StateAll    StateFilter = "all"
	StateOpen   StateFilter = "open"
	StateClosed StateFilter = "closed"
)

// CreateIssuePayload carries the fields for creating an issue. Milestone is
// a target-side milestone number and Labels are target-side label names;
// both must exist before the issue is created.
type CreateIssuePayload struct {
	Title     string
	Body      string
	Assignee  string
	Milestone *int
	Labels    []string
}

// IssuePatch is a partial update of an existing issue. Nil fields are left
// untouched.
type IssuePatch struct {
	Body  *string
	State *string
}

// Empty reports whether the patch would change nothing.
func (p IssuePatch) Empty() bool {
	return p.Body == nil && p.State == nil
}

// Tracker provides access to the issues of one repository identity. All
// listing calls paginate sequentially and return results ascending by
// creation time.
type Tracker interface {
	// Repository returns the "owner/repo" identity this tracker is bound to.
	Repository() string

	// ListIssues lists issues matching the state filter.
	ListIssues(ctx context.Context, state StateFilter) ([]issue.Issue, error)

	// GetIssue fetches a single issue by number.
	GetIssue(ctx context.Context, number int) (issue.Issue, error)

	// ListComments lists the comments of an issue in creation order.
	ListComments(ctx context.Context, issueNumber int) ([]issue.Comment, error)

	// ListLabels lists all labels of the repository.
	ListLabels(ctx context.Context) ([]issue.Label, error)

	// ListOpenMilestones lists the open milestones of the repository.
	ListOpenMilestones(ctx context.Context) ([]issue.Milestone, error)

	// CreateIssue creates an issue and returns it as stored by the tracker.
	CreateIssue(ctx context.Context, payload CreateIssuePayload) (issue.Issue, error)

	// CreateComment creates a comment on an issue.
	CreateComment(ctx context.Context, issueNumber int, body string) (issue.Comment, error)

	// CreateLabel creates a label.
	CreateLabel(ctx context.Context, label issue.Label) (issue.Label, error)

	// CreateMilestone creates a milestone.
	CreateMilestone(ctx context.Context, milestone issue.Milestone) (issue.Milestone, error)

	// PatchIssue applies a partial update to an existing issue.
	PatchIssue(ctx context.Context, number int, patch IssuePatch) (issue.Issue, error)
}

// Provider builds a Tracker for a repository from its resolved settings.
// It exists so the import engine can be tested with mocked trackers.
type Provider func(ctx context.Context, settings config.RepoSettings) (Tracker, error)
