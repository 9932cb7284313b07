package migration

import (
	"context"

	"github.com/lerenn/issues-migrate/pkg/issue"
	"github.com/lerenn/issues-migrate/pkg/tracker"
)

// fetchSourceIssues collects the issues to migrate from every configured
// source, in configured source order. The chronological merge across
// sources happens later in BuildPlan; the stable sort there relies on this
// order for issues with identical timestamps.
func (m *realMigrator) fetchSourceIssues(ctx context.Context) ([]issue.Issue, error) {
	var issues []issue.Issue

	for _, source := range m.Config.Sources {
		t, err := m.trackerFor(ctx, source)
		if err != nil {
			return nil, err
		}

		fetched, err := m.fetchFromSource(ctx, t)
		if err != nil {
			return nil, err
		}

		m.VerbosePrint("Fetched %d issues from %s", len(fetched), source)
		issues = append(issues, fetched...)
	}

	return issues, nil
}

// fetchFromSource fetches either the explicit issue id set or everything
// matching the configured state filter.
func (m *realMigrator) fetchFromSource(ctx context.Context, t tracker.Tracker) ([]issue.Issue, error) {
	if numbers := m.Config.Selection.Numbers; len(numbers) > 0 {
		issues := make([]issue.Issue, 0, len(numbers))
		for _, number := range numbers {
			iss, err := t.GetIssue(ctx, number)
			if err != nil {
				return nil, err
			}
			issues = append(issues, iss)
		}
		return issues, nil
	}

	return t.ListIssues(ctx, tracker.StateFilter(m.Config.Selection.Filter))
}
