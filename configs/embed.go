// Package configs provides embedded default configuration and body
// templates for the issues-migrate application.
package configs

import _ "embed"

// DefaultConfigYAML contains the default configuration file content.
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// DefaultIssueTemplate is the body template used for migrated issues when
// no user template is configured.
//
//go:embed templates/issue.md
var DefaultIssueTemplate string

// DefaultPullRequestTemplate is the body template used for migrated pull
// requests when no user template is configured.
//
//go:embed templates/pull_request.md
var DefaultPullRequestTemplate string

// DefaultCommentTemplate is the body template used for migrated comments
// when no user template is configured.
//
//go:embed templates/comment.md
var DefaultCommentTemplate string
