package tracker

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/lerenn/issues-migrate/pkg/config"
	"github.com/lerenn/issues-migrate/pkg/issue"
)

const (
	// GitHubDomain is the default tracker host; any other server is
	// treated as a GitHub Enterprise installation.
	GitHubDomain = "github.com"

	perPage = 100
)

// GitHub implements Tracker on the GitHub REST API for one repository.
type GitHub struct {
	client     *github.Client
	repository string
	owner      string
	name       string
}

// NewGitHub creates a Tracker bound to the repository described by the
// resolved settings. A username plus token authenticate as basic auth, a
// bare token as a bearer token; without a token requests are anonymous.
func NewGitHub(ctx context.Context, settings config.RepoSettings) (Tracker, error) {
	owner, name, err := splitRepository(settings.Repository)
	if err != nil {
		return nil, err
	}

	var httpClient *http.Client
	if settings.Token != "" {
		ts := oauth2.StaticTokenSource(authToken(settings.Username, settings.Token))
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if settings.Server != GitHubDomain {
		client, err = client.WithEnterpriseURLs(settings.APIBaseURL, settings.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to configure enterprise URLs: %w", err)
		}
	}

	return &GitHub{
		client:     client,
		repository: settings.Repository,
		owner:      owner,
		name:       name,
	}, nil
}

// authToken builds the static credential sent on every request: basic auth
// with the token as password when a username is configured, a plain bearer
// token otherwise.
func authToken(username, token string) *oauth2.Token {
	if username == "" {
		return &oauth2.Token{AccessToken: token}
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + token))
	return &oauth2.Token{AccessToken: credentials, TokenType: "Basic"}
}

// Repository returns the "owner/repo" identity this tracker is bound to.
func (g *GitHub) Repository() string {
	return g.repository
}

// ListIssues lists issues matching the state filter, paginating until the
// tracker reports no further page. Results are ascending by creation time;
// pull requests are included and flagged as such.
func (g *GitHub) ListIssues(ctx context.Context, state StateFilter) ([]issue.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:     string(state),
		Sort:      "created",
		Direction: "asc",
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	var issues []issue.Issue
	for {
		page, resp, err := g.client.Issues.ListByRepo(ctx, g.owner, g.name, opts)
		if err != nil {
			return nil, g.mapError(err)
		}

		for _, ghIssue := range page {
			issues = append(issues, g.convertIssue(ghIssue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return issues, nil
}

// GetIssue fetches a single issue by number.
func (g *GitHub) GetIssue(ctx context.Context, number int) (issue.Issue, error) {
	ghIssue, _, err := g.client.Issues.Get(ctx, g.owner, g.name, number)
	if err != nil {
		return issue.Issue{}, g.mapError(err)
	}
	return g.convertIssue(ghIssue), nil
}

// ListComments lists the comments of an issue in creation order.
func (g *GitHub) ListComments(ctx context.Context, issueNumber int) ([]issue.Comment, error) {
	opts := &github.IssueListCommentsOptions{
		Sort:      github.String("created"),
		Direction: github.String("asc"),
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	var comments []issue.Comment
	for {
		page, resp, err := g.client.Issues.ListComments(ctx, g.owner, g.name, issueNumber, opts)
		if err != nil {
			return nil, g.mapError(err)
		}

		for _, ghComment := range page {
			comments = append(comments, convertComment(ghComment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return comments, nil
}

// ListLabels lists all labels of the repository.
func (g *GitHub) ListLabels(ctx context.Context) ([]issue.Label, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var labels []issue.Label
	for {
		page, resp, err := g.client.Issues.ListLabels(ctx, g.owner, g.name, opts)
		if err != nil {
			return nil, g.mapError(err)
		}

		for _, ghLabel := range page {
			labels = append(labels, convertLabel(ghLabel))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return labels, nil
}

// ListOpenMilestones lists the open milestones of the repository.
func (g *GitHub) ListOpenMilestones(ctx context.Context) ([]issue.Milestone, error) {
	opts := &github.MilestoneListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var milestones []issue.Milestone
	for {
		page, resp, err := g.client.Issues.ListMilestones(ctx, g.owner, g.name, opts)
		if err != nil {
			return nil, g.mapError(err)
		}

		for _, ghMilestone := range page {
			milestones = append(milestones, convertMilestone(ghMilestone))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return milestones, nil
}

// CreateIssue creates an issue and returns it as stored by the tracker.
func (g *GitHub) CreateIssue(ctx context.Context, payload CreateIssuePayload) (issue.Issue, error) {
	request := &github.IssueRequest{
		Title:     github.String(payload.Title),
		Body:      github.String(payload.Body),
		Milestone: payload.Milestone,
	}
	if payload.Assignee != "" {
		request.Assignee = github.String(payload.Assignee)
	}
	if len(payload.Labels) > 0 {
		request.Labels = &payload.Labels
	}

	ghIssue, _, err := g.client.Issues.Create(ctx, g.owner, g.name, request)
	if err != nil {
		return issue.Issue{}, g.mapError(err)
	}
	return g.convertIssue(ghIssue), nil
}

// CreateComment creates a comment on an issue.
func (g *GitHub) CreateComment(ctx context.Context, issueNumber int, body string) (issue.Comment, error) {
	ghComment, _, err := g.client.Issues.CreateComment(ctx, g.owner, g.name, issueNumber, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return issue.Comment{}, g.mapError(err)
	}
	return convertComment(ghComment), nil
}

// CreateLabel creates a label.
func (g *GitHub) CreateLabel(ctx context.Context, label issue.Label) (issue.Label, error) {
	ghLabel := &github.Label{
		Name: github.String(label.Name),
	}
	if label.Color != "" {
		ghLabel.Color = github.String(label.Color)
	}
	if label.Description != "" {
		ghLabel.Description = github.String(label.Description)
	}

	created, _, err := g.client.Issues.CreateLabel(ctx, g.owner, g.name, ghLabel)
	if err != nil {
		return issue.Label{}, g.mapError(err)
	}
	return convertLabel(created), nil
}

// CreateMilestone creates a milestone. The milestone is created open so
// issues can still be attached to it.
func (g *GitHub) CreateMilestone(ctx context.Context, milestone issue.Milestone) (issue.Milestone, error) {
	ghMilestone := &github.Milestone{
		Title: github.String(milestone.Title),
		State: github.String("open"),
	}
	if milestone.Description != "" {
		ghMilestone.Description = github.String(milestone.Description)
	}
	if milestone.DueOn != nil {
		ghMilestone.DueOn = &github.Timestamp{Time: *milestone.DueOn}
	}

	created, _, err := g.client.Issues.CreateMilestone(ctx, g.owner, g.name, ghMilestone)
	if err != nil {
		return issue.Milestone{}, g.mapError(err)
	}
	return convertMilestone(created), nil
}

// PatchIssue applies a partial update to an existing issue.
func (g *GitHub) PatchIssue(ctx context.Context, number int, patch IssuePatch) (issue.Issue, error) {
	request := &github.IssueRequest{
		Body:  patch.Body,
		State: patch.State,
	}

	ghIssue, _, err := g.client.Issues.Edit(ctx, g.owner, g.name, number, request)
	if err != nil {
		return issue.Issue{}, g.mapError(err)
	}
	return g.convertIssue(ghIssue), nil
}

// mapError translates go-github errors into the tracker error taxonomy.
func (g *GitHub) mapError(err error) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		switch errResp.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w (repository %s)", ErrAuthentication, g.repository)
		case http.StatusNotFound:
			return fmt.Errorf("%w (repository %s)", ErrNotFound, g.repository)
		default:
			return fmt.Errorf("%w: %d %s: %s", ErrRequestRejected,
				errResp.Response.StatusCode, http.StatusText(errResp.Response.StatusCode), errResp.Message)
		}
	}
	return fmt.Errorf("tracker request failed for %s: %w", g.repository, err)
}

// convertIssue translates a go-github issue, tagging it with the repository
// identity it was fetched from.
func (g *GitHub) convertIssue(ghIssue *github.Issue) issue.Issue {
	converted := issue.Issue{
		Repository: g.repository,
		Number:     ghIssue.GetNumber(),
		Title:      ghIssue.GetTitle(),
		Body:       ghIssue.GetBody(),
		User: issue.User{
			Login:     ghIssue.GetUser().GetLogin(),
			HTMLURL:   ghIssue.GetUser().GetHTMLURL(),
			AvatarURL: ghIssue.GetUser().GetAvatarURL(),
		},
		CreatedAt:     ghIssue.GetCreatedAt().Time,
		Assignee:      ghIssue.GetAssignee().GetLogin(),
		Comments:      ghIssue.GetComments(),
		IsPullRequest: ghIssue.IsPullRequest(),
		HTMLURL:       ghIssue.GetHTMLURL(),
	}

	if ghIssue.ClosedAt != nil {
		closedAt := ghIssue.GetClosedAt().Time
		converted.ClosedAt = &closedAt
	}

	if ghIssue.Milestone != nil {
		milestone := convertMilestone(ghIssue.Milestone)
		converted.Milestone = &milestone
	}

	for _, ghLabel := range ghIssue.Labels {
		converted.Labels = append(converted.Labels, convertLabel(ghLabel))
	}

	return converted
}

func convertComment(ghComment *github.IssueComment) issue.Comment {
	return issue.Comment{
		User: issue.User{
			Login:     ghComment.GetUser().GetLogin(),
			HTMLURL:   ghComment.GetUser().GetHTMLURL(),
			AvatarURL: ghComment.GetUser().GetAvatarURL(),
		},
		Body:      ghComment.GetBody(),
		CreatedAt: ghComment.GetCreatedAt().Time,
		HTMLURL:   ghComment.GetHTMLURL(),
	}
}

func convertLabel(ghLabel *github.Label) issue.Label {
	return issue.Label{
		Name:        ghLabel.GetName(),
		Color:       ghLabel.GetColor(),
		Description: ghLabel.GetDescription(),
	}
}

func convertMilestone(ghMilestone *github.Milestone) issue.Milestone {
	converted := issue.Milestone{
		Number:      ghMilestone.GetNumber(),
		Title:       ghMilestone.GetTitle(),
		Description: ghMilestone.GetDescription(),
		State:       ghMilestone.GetState(),
	}
	if ghMilestone.DueOn != nil {
		dueOn := ghMilestone.GetDueOn().Time
		converted.DueOn = &dueOn
	}
	return converted
}

// splitRepository splits an "owner/repo" identity into its parts.
func splitRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q (expected owner/repo)", ErrInvalidRepository, repository)
	}
	return parts[0], parts[1], nil
}
