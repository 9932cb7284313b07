// Package template renders migrated issue, pull-request and comment bodies
// from a fixed field set, using either the embedded default templates or
// user-supplied template files.
package template

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/lerenn/issues-migrate/configs"
	"github.com/lerenn/issues-migrate/pkg/config"
	"github.com/lerenn/issues-migrate/pkg/issue"
)

// Renderer renders bodies for the import engine. It is a pure function of
// its inputs once constructed.
type Renderer struct {
	dateLayout  string
	issueTmpl   *template.Template
	prTmpl      *template.Template
	commentTmpl *template.Template
}

// NewRenderer builds a Renderer from the resolved format configuration. An
// unreadable or unparseable template file is a configuration error,
// surfaced before any network activity.
func NewRenderer(format config.Format) (*Renderer, error) {
	issueTmpl, err := loadTemplate("issue", format.IssueTemplate, configs.DefaultIssueTemplate)
	if err != nil {
		return nil, err
	}

	prTmpl, err := loadTemplate("pull_request", format.PullRequestTemplate, configs.DefaultPullRequestTemplate)
	if err != nil {
		return nil, err
	}

	commentTmpl, err := loadTemplate("comment", format.CommentTemplate, configs.DefaultCommentTemplate)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		dateLayout:  format.DateLayout,
		issueTmpl:   issueTmpl,
		prTmpl:      prTmpl,
		commentTmpl: commentTmpl,
	}, nil
}

// RenderIssue renders the body of a migrated issue. The body argument is
// used instead of the raw issue body so cross-reference rewriting applies.
func (r *Renderer) RenderIssue(iss *issue.Issue, body string) (string, error) {
	tmpl := r.issueTmpl
	if iss.IsPullRequest {
		tmpl = r.prTmpl
	}

	return render(tmpl, map[string]any{
		"user_name":    iss.User.Login,
		"user_url":     iss.User.HTMLURL,
		"user_avatar":  iss.User.AvatarURL,
		"date":         r.formatDate(iss),
		"url":          iss.HTMLURL,
		"body":         body,
		"num_comments": iss.Comments,
	})
}

// RenderComment renders the body of a migrated comment.
func (r *Renderer) RenderComment(comment *issue.Comment) (string, error) {
	return render(r.commentTmpl, map[string]any{
		"user_name":    comment.User.Login,
		"user_url":     comment.User.HTMLURL,
		"user_avatar":  comment.User.AvatarURL,
		"date":         comment.CreatedAt.UTC().Format(r.dateLayout),
		"url":          comment.HTMLURL,
		"body":         comment.Body,
		"num_comments": 0,
	})
}

func (r *Renderer) formatDate(iss *issue.Issue) string {
	return iss.CreatedAt.UTC().Format(r.dateLayout)
}

func render(tmpl *template.Template, fields map[string]any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, fields); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return sb.String(), nil
}

// loadTemplate parses the user-supplied template file when a path is
// configured, otherwise the embedded default.
func loadTemplate(name, path, fallback string) (*template.Template, error) {
	text := fallback
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTemplateNotReadable, err)
		}
		text = string(data)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateInvalid, err)
	}
	return tmpl, nil
}
