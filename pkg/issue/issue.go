// Package issue provides the shared data model for issues, comments, labels
// and milestones as exchanged with issue trackers.
package issue

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Ref identifies an issue uniquely across all repositories participating in
// a migration. Repository is a lowercased "owner/repo" pair.
type Ref struct {
	Repository string
	Number     int
}

// String renders the reference in "owner/repo#N" form.
func (r Ref) String() string {
	return fmt.Sprintf("%s#%d", r.Repository, r.Number)
}

// User represents the author of an issue or comment.
type User struct {
	Login     string
	HTMLURL   string
	AvatarURL string
}

// Issue is a raw issue as fetched from a tracker.
type Issue struct {
	Repository    string
	Number        int
	Title         string
	Body          string
	User          User
	CreatedAt     time.Time
	ClosedAt      *time.Time
	Assignee      string
	Milestone     *Milestone
	Labels        []Label
	Comments      int
	IsPullRequest bool
	HTMLURL       string
}

// Ref returns the reference identifying this issue.
func (i *Issue) Ref() Ref {
	return Ref{Repository: i.Repository, Number: i.Number}
}

// Closed reports whether the issue has been closed.
func (i *Issue) Closed() bool {
	return i.ClosedAt != nil
}

// Comment is a single comment on an issue.
type Comment struct {
	User      User
	Body      string
	CreatedAt time.Time
	HTMLURL   string
}

// Label is identified across repositories by its name; the tracker-local
// numeric id is never used for cross-repository comparison.
type Label struct {
	Name        string
	Color       string
	Description string
}

// Milestone is identified across repositories by its title.
type Milestone struct {
	Number      int
	Title       string
	Description string
	State       string
	DueOn       *time.Time
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeLabelName lowercases a label name and replaces each run of
// whitespace with a single hyphen.
func NormalizeLabelName(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(name), "-")
}
